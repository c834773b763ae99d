// Package cmd defines the command-line interface for scorecast.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(prepCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().StringP("metric", "m", "all", "Comma-separated metrics to score: mse, mae, mape, maape, mase or all")
	scoreCmd.Flags().String("train", "", "Training-series CSV used to normalize mase")
	scoreCmd.Flags().Int("seasonal-period", contract.DefaultSeasonalPeriod, "Lag of the naive forecast used by mase")
	scoreCmd.Flags().Bool("ignore-nans", false, "Drop observation pairs where either side is NaN")
	scoreCmd.Flags().String("value-column", contract.DefaultValueColumn, "CSV column holding the series values")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of prepCmd to Viper
	prepCmd.Flags().String("price-columns", "", "Comma-separated columns with currency-formatted values")
	prepCmd.Flags().String("bool-columns", "", "Comma-separated columns with t/f flags")
	prepCmd.Flags().String("expand-column", "", "Column with {a,b,c} tag lists to expand into indicators")
	if err := viper.BindPFlags(prepCmd.Flags()); err != nil {
		contract.LogFatal("Error binding prep flags", err)
	}
}
