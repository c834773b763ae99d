package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scorecast/scorecast/core"
	"github.com/scorecast/scorecast/internal/contract"
)

// scoreCmd scores an estimate series against a truth series.
var scoreCmd = &cobra.Command{
	Use:   "score <truth-csv> <estimate-csv>",
	Short: "Score an estimated series against the observed truth.",
	Long: `Compare an estimated series against the observed truth, pair by pair.

Loads both CSV files, aligns them by row order, and computes the selected
forecast-accuracy metrics. Percentage metrics also get an accuracy label
on the Lewis scale (Excellent, Good, Fair, Poor).

Division by zero is not an error: mape reports ±Inf when a true value is
zero, and a 0/0 pair is NaN. Use --ignore-nans to drop pairs with missing
observations instead of letting NaN dominate the mean.

The mase metric needs a training series to normalize against, so it only
runs when --train is given.

Examples:
  # Score with every available metric
  scorecast score truth.csv estimate.csv

  # Score specific metrics with missing observations dropped
  scorecast score truth.csv estimate.csv --metric mae,mape --ignore-nans

  # Scale-free error against a seasonal naive baseline
  scorecast score truth.csv estimate.csv --metric mase --train history.csv --seasonal-period 12

  # Export findings for tracking
  scorecast score truth.csv estimate.csv --output parquet --output-file report.parquet`,
	Args:    cobra.ExactArgs(2),
	PreRunE: scoreSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score series", err)
		}
	},
}
