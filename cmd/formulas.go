package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scorecast/scorecast/core"
	"github.com/scorecast/scorecast/internal/contract"
)

// formulasCmd displays the formal definitions of all metrics.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Display mathematical formulas and definitions for all metrics",
	Long: `Show the formal definitions and formulas for every scoring metric.

No scoring is performed - this is purely informational.

Use this to:
- Understand what each metric measures
- Explain scoring behavior to your team
- Document methodology in reports

Examples:
  # Show the definitions as a table
  scorecast formulas

  # Export the definitions for documentation
  scorecast formulas --output csv --output-file formulas.csv`,
	PreRunE: displaySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display formulas", err)
		}
	},
}
