package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scorecast/scorecast/core"
	"github.com/scorecast/scorecast/internal/contract"
)

// prepCmd cleans a raw dataset before modeling.
var prepCmd = &cobra.Command{
	Use:   "prep <input-csv>",
	Short: "Clean a raw CSV dataset for modeling.",
	Long: `Clean a raw CSV export into a numeric, model-ready dataset.

Three cleaners are available and at least one must be selected:
- --price-columns strips currency formatting ($1,250.00 becomes 1250)
  and turns unparseable cells into NaN
- --bool-columns converts t/f flags into proper booleans
- --expand-column explodes a {a,b,c} tag-list column into one 0/1
  indicator column per tag

Text output prints a summary of what changed; use csv or json output to
write the cleaned dataset itself.

Examples:
  # Normalize listing prices and availability flags
  scorecast prep listings.csv --price-columns price,weekly_price --bool-columns instant_bookable

  # Expand an amenities column into indicator features
  scorecast prep listings.csv --expand-column amenities --output csv --output-file cleaned.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: prepSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePrep(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot prepare dataset", err)
		}
	},
}
