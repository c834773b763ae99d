package contract

import (
	"fmt"
	"strings"

	"github.com/scorecast/scorecast/schema"
)

// Default values for configuration.
const (
	DefaultPrecision      = 4
	DefaultSeasonalPeriod = 1
	DefaultValueColumn    = "y"
	MaxPrecision          = 12
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig fills the profiling config from the flag value.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	profile.Prefix = strings.TrimSpace(prefix)
	profile.Enabled = profile.Prefix != ""
	return nil
}

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	// Scoring inputs
	TruthPath      string
	EstimatePath   string
	TrainPath      string
	SeasonalPeriod int
	Metrics        []schema.MetricID
	IgnoreNaNs     bool
	ValueColumn    string

	// Data-preparation inputs
	InputPath    string
	PriceColumns []string
	BoolColumns  []string
	ExpandColumn string

	// Output
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // terminal width override (0 = auto-detect)
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags.
	TruthPathStr    string
	EstimatePathStr string
	InputPathStr    string

	Train          string `mapstructure:"train"`
	SeasonalPeriod int    `mapstructure:"seasonal-period"`
	Metric         string `mapstructure:"metric"`
	IgnoreNaNs     bool   `mapstructure:"ignore-nans"`
	ValueColumn    string `mapstructure:"value-column"`
	PriceColumns   string `mapstructure:"price-columns"`
	BoolColumns    string `mapstructure:"bool-columns"`
	ExpandColumn   string `mapstructure:"expand-column"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
}

// parseMetricList resolves the --metric value into a validated ID list.
// "all" expands to every metric in display order.
func parseMetricList(raw string) ([]schema.MetricID, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == "all" {
		return append([]schema.MetricID(nil), schema.AllMetricIDs...), nil
	}

	var ids []schema.MetricID
	seen := make(map[schema.MetricID]struct{})
	for _, part := range strings.Split(raw, ",") {
		id := schema.MetricID(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if _, ok := schema.ValidMetricIDs[id]; !ok {
			return nil, fmt.Errorf("unknown metric %q (valid: mse, mae, mape, maape, mase, all)", id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no metrics selected from %q", raw)
	}
	return ids, nil
}

// parseColumnList splits a comma-separated column flag into names.
func parseColumnList(raw string) []string {
	var cols []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}

// parseColorChoice interprets the yes/no style --color flag.
func parseColorChoice(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "yes", "true", "1", "y":
		return true, nil
	case "no", "false", "0", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color choice %q (use yes/no)", raw)
	}
}

// processShared validates the options common to every command and populates
// the corresponding Config fields.
func processShared(cfg *Config, input *ConfigRawInput) error {
	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (valid: text, csv, json, parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range [0,%d]", input.Precision, MaxPrecision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := parseColorChoice(input.Color)
	if err != nil {
		return err
	}
	cfg.UseColors = useColors
	return nil
}

// ProcessAndValidateScore validates the raw input for the score command and
// populates cfg.
func ProcessAndValidateScore(cfg *Config, input *ConfigRawInput) error {
	if err := processShared(cfg, input); err != nil {
		return err
	}

	if input.TruthPathStr == "" || input.EstimatePathStr == "" {
		return fmt.Errorf("score requires a truth CSV and an estimate CSV")
	}
	cfg.TruthPath = input.TruthPathStr
	cfg.EstimatePath = input.EstimatePathStr
	cfg.TrainPath = strings.TrimSpace(input.Train)
	cfg.IgnoreNaNs = input.IgnoreNaNs

	cfg.ValueColumn = strings.TrimSpace(input.ValueColumn)
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = DefaultValueColumn
	}

	if input.SeasonalPeriod < 1 {
		return fmt.Errorf("seasonal period must be at least 1, got %d", input.SeasonalPeriod)
	}
	cfg.SeasonalPeriod = input.SeasonalPeriod

	metricIDs, err := parseMetricList(input.Metric)
	if err != nil {
		return err
	}
	if cfg.TrainPath == "" {
		// MASE needs a training series; drop it from the implicit "all"
		// selection but reject an explicit request.
		filtered := metricIDs[:0]
		for _, id := range metricIDs {
			if id == schema.MASEMetric {
				if !isAllSelection(input.Metric) {
					return fmt.Errorf("metric %q requires --train", schema.MASEMetric)
				}
				continue
			}
			filtered = append(filtered, id)
		}
		metricIDs = filtered
	}
	cfg.Metrics = metricIDs
	return nil
}

// isAllSelection reports whether the metric flag was the implicit/explicit
// full selection.
func isAllSelection(raw string) bool {
	raw = strings.TrimSpace(strings.ToLower(raw))
	return raw == "" || raw == "all"
}

// ProcessAndValidatePrep validates the raw input for the prep command and
// populates cfg.
func ProcessAndValidatePrep(cfg *Config, input *ConfigRawInput) error {
	if err := processShared(cfg, input); err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("prep does not support parquet output (use csv or json)")
	}

	if input.InputPathStr == "" {
		return fmt.Errorf("prep requires an input CSV")
	}
	cfg.InputPath = input.InputPathStr
	cfg.PriceColumns = parseColumnList(input.PriceColumns)
	cfg.BoolColumns = parseColumnList(input.BoolColumns)
	cfg.ExpandColumn = strings.TrimSpace(input.ExpandColumn)

	if len(cfg.PriceColumns) == 0 && len(cfg.BoolColumns) == 0 && cfg.ExpandColumn == "" {
		return fmt.Errorf("prep needs at least one of --price-columns, --bool-columns, --expand-column")
	}
	return nil
}

// ProcessAndValidateDisplay validates the raw input for display-only
// commands such as formulas.
func ProcessAndValidateDisplay(cfg *Config, input *ConfigRawInput) error {
	if err := processShared(cfg, input); err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("formulas does not support parquet output")
	}
	return nil
}
