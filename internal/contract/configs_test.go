package contract

import (
	"testing"

	"github.com/scorecast/scorecast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawScoreInput returns a minimal valid raw input for the score command.
func rawScoreInput() *ConfigRawInput {
	return &ConfigRawInput{
		TruthPathStr:    "truth.csv",
		EstimatePathStr: "estimate.csv",
		Metric:          "all",
		SeasonalPeriod:  1,
		ValueColumn:     "y",
		Precision:       DefaultPrecision,
		Output:          "text",
		Color:           "yes",
	}
}

func TestProcessAndValidateScore(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name:   "valid minimal config",
			mutate: func(_ *ConfigRawInput) {},
			check: func(t *testing.T, cfg *Config) {
				// No train series, so "all" silently drops MASE.
				assert.Equal(t, []schema.MetricID{
					schema.MSEMetric, schema.MAEMetric, schema.MAPEMetric, schema.MAAPEMetric,
				}, cfg.Metrics)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name: "explicit metric list with train",
			mutate: func(in *ConfigRawInput) {
				in.Metric = "mase, mae"
				in.Train = "train.csv"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []schema.MetricID{schema.MASEMetric, schema.MAEMetric}, cfg.Metrics)
				assert.Equal(t, "train.csv", cfg.TrainPath)
			},
		},
		{
			name: "explicit mase without train",
			mutate: func(in *ConfigRawInput) {
				in.Metric = "mase"
			},
			expectError: true,
		},
		{
			name: "unknown metric",
			mutate: func(in *ConfigRawInput) {
				in.Metric = "rmse"
			},
			expectError: true,
		},
		{
			name: "invalid output mode",
			mutate: func(in *ConfigRawInput) {
				in.Output = "xml"
			},
			expectError: true,
		},
		{
			name: "seasonal period below one",
			mutate: func(in *ConfigRawInput) {
				in.SeasonalPeriod = 0
			},
			expectError: true,
		},
		{
			name: "precision out of range",
			mutate: func(in *ConfigRawInput) {
				in.Precision = 99
			},
			expectError: true,
		},
		{
			name: "missing estimate path",
			mutate: func(in *ConfigRawInput) {
				in.EstimatePathStr = ""
			},
			expectError: true,
		},
		{
			name: "color no",
			mutate: func(in *ConfigRawInput) {
				in.Color = "no"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.UseColors)
			},
		},
		{
			name: "invalid color choice",
			mutate: func(in *ConfigRawInput) {
				in.Color = "maybe"
			},
			expectError: true,
		},
		{
			name: "empty value column falls back to default",
			mutate: func(in *ConfigRawInput) {
				in.ValueColumn = "  "
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultValueColumn, cfg.ValueColumn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rawScoreInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidateScore(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestProcessAndValidatePrep(t *testing.T) {
	base := func() *ConfigRawInput {
		return &ConfigRawInput{
			InputPathStr: "listings.csv",
			PriceColumns: "price",
			BoolColumns:  "has_availability, instant_bookable",
			ExpandColumn: "amenities",
			Precision:    DefaultPrecision,
			Output:       "csv",
			Color:        "yes",
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidatePrep(cfg, base()))
		assert.Equal(t, []string{"price"}, cfg.PriceColumns)
		assert.Equal(t, []string{"has_availability", "instant_bookable"}, cfg.BoolColumns)
		assert.Equal(t, "amenities", cfg.ExpandColumn)
	})

	t.Run("no cleaners selected", func(t *testing.T) {
		in := base()
		in.PriceColumns, in.BoolColumns, in.ExpandColumn = "", "", ""
		assert.Error(t, ProcessAndValidatePrep(&Config{}, in))
	})

	t.Run("parquet rejected", func(t *testing.T) {
		in := base()
		in.Output = "parquet"
		assert.Error(t, ProcessAndValidatePrep(&Config{}, in))
	})

	t.Run("missing input path", func(t *testing.T) {
		in := base()
		in.InputPathStr = ""
		assert.Error(t, ProcessAndValidatePrep(&Config{}, in))
	})
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, "  perf "))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "perf", profile.Prefix)

	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)
}
