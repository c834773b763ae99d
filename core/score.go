package core

import (
	"context"
	"fmt"
	"math"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/internal/seriesio"
	"github.com/scorecast/scorecast/metrics"
	"github.com/scorecast/scorecast/schema"
)

// scoreInput bundles the loaded series for a scoring run.
type scoreInput struct {
	yTrue      []float64
	yEstimated []float64
	yTrain     []float64
}

// loadScoreInput loads the truth, estimate and optional training series.
func loadScoreInput(cfg *contract.Config) (*scoreInput, error) {
	opts := seriesio.DefaultOptions()
	opts.ValueColumn = cfg.ValueColumn

	yTrue, err := seriesio.LoadCSV(cfg.TruthPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load truth series: %w", err)
	}
	yEstimated, err := seriesio.LoadCSV(cfg.EstimatePath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate series: %w", err)
	}
	if len(yTrue) != len(yEstimated) {
		return nil, fmt.Errorf("truth has %d observations but estimate has %d: %w",
			len(yTrue), len(yEstimated), metrics.ErrShapeMismatch)
	}

	input := &scoreInput{yTrue: yTrue, yEstimated: yEstimated}
	if cfg.TrainPath != "" {
		input.yTrain, err = seriesio.LoadCSV(cfg.TrainPath, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to load training series: %w", err)
		}
	}
	return input, nil
}

// buildReport scores every requested metric and assembles the report.
func buildReport(ctx context.Context, cfg *contract.Config, input *scoreInput) (schema.Report, error) {
	report := schema.Report{
		TruthPath:      cfg.TruthPath,
		EstimatePath:   cfg.EstimatePath,
		TrainPath:      cfg.TrainPath,
		SeasonalPeriod: cfg.SeasonalPeriod,
		IgnoreNaNs:     cfg.IgnoreNaNs,
		Observations:   len(input.yTrue),
	}

	dropped := 0
	if cfg.IgnoreNaNs {
		dropped = countPairedNaNs(input.yTrue, input.yEstimated)
	}

	for _, id := range cfg.Metrics {
		if err := ctx.Err(); err != nil {
			return schema.Report{}, err
		}
		value, err := scoreOne(id, cfg, input)
		if err != nil {
			return schema.Report{}, fmt.Errorf("metric %s: %w", id, err)
		}
		report.Scores = append(report.Scores, schema.MetricScore{
			ID:      id,
			Name:    schema.MetricName(id),
			Value:   value,
			Pairs:   report.Observations - dropped,
			Dropped: dropped,
		})
	}
	return report, nil
}

// scoreOne dispatches a metric ID to its implementation, honoring the
// NaN-handling choice.
func scoreOne(id schema.MetricID, cfg *contract.Config, input *scoreInput) (float64, error) {
	if id == schema.MASEMetric {
		if cfg.IgnoreNaNs {
			return metrics.MeanAbsoluteScaledErrorIgnoringNaNs(input.yTrain, input.yTrue, input.yEstimated, cfg.SeasonalPeriod)
		}
		return metrics.MeanAbsoluteScaledError(input.yTrain, input.yTrue, input.yEstimated, cfg.SeasonalPeriod)
	}

	var metric metrics.Metric
	switch id {
	case schema.MSEMetric:
		metric = metrics.MeanSquaredError
		if cfg.IgnoreNaNs {
			metric = metrics.MeanSquaredErrorIgnoringNaNs
		}
	case schema.MAEMetric:
		metric = metrics.MeanAbsoluteError
		if cfg.IgnoreNaNs {
			metric = metrics.MeanAbsoluteErrorIgnoringNaNs
		}
	case schema.MAPEMetric:
		metric = metrics.MeanAbsolutePercentageError
		if cfg.IgnoreNaNs {
			metric = metrics.MeanAbsolutePercentageErrorIgnoringNaNs
		}
	case schema.MAAPEMetric:
		metric = metrics.MeanAdjustedAbsolutePercentageError
		if cfg.IgnoreNaNs {
			metric = metrics.MeanAdjustedAbsolutePercentageErrorIgnoringNaNs
		}
	default:
		return 0, fmt.Errorf("unknown metric %q", id)
	}
	return metric(input.yTrue, input.yEstimated)
}

// countPairedNaNs counts observation pairs where either side is NaN.
func countPairedNaNs(yTrue, yEstimated []float64) int {
	count := 0
	for i := range yTrue {
		if math.IsNaN(yTrue[i]) || math.IsNaN(yEstimated[i]) {
			count++
		}
	}
	return count
}
