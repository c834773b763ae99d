package core

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/metrics"
	"github.com/scorecast/scorecast/schema"
)

// writeSeriesCSV drops a single-column CSV fixture into a temp dir.
func writeSeriesCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func scoreConfig(t *testing.T) (*contract.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &contract.Config{
		TruthPath:      writeSeriesCSV(t, dir, "truth.csv", "y\n1\n2\n3\n4\n"),
		EstimatePath:   writeSeriesCSV(t, dir, "estimate.csv", "y\n1\n3\n2\n4\n"),
		SeasonalPeriod: 1,
		ValueColumn:    "y",
		Metrics:        []schema.MetricID{schema.MSEMetric, schema.MAEMetric, schema.MAPEMetric},
		Precision:      4,
		Output:         schema.TextOut,
	}
	return cfg, dir
}

func TestLoadScoreInput(t *testing.T) {
	cfg, _ := scoreConfig(t)

	input, err := loadScoreInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, input.yTrue)
	assert.Equal(t, []float64{1, 3, 2, 4}, input.yEstimated)
	assert.Nil(t, input.yTrain)
}

func TestLoadScoreInputLengthMismatch(t *testing.T) {
	cfg, dir := scoreConfig(t)
	cfg.EstimatePath = writeSeriesCSV(t, dir, "short.csv", "y\n1\n2\n")

	_, err := loadScoreInput(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, metrics.ErrShapeMismatch)
}

func TestLoadScoreInputWithTrain(t *testing.T) {
	cfg, dir := scoreConfig(t)
	cfg.TrainPath = writeSeriesCSV(t, dir, "train.csv", "y\n10\n12\n11\n")

	input, err := loadScoreInput(cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 11}, input.yTrain)
}

func TestBuildReport(t *testing.T) {
	cfg, _ := scoreConfig(t)
	input, err := loadScoreInput(cfg)
	require.NoError(t, err)

	report, err := buildReport(context.Background(), cfg, input)
	require.NoError(t, err)

	require.Len(t, report.Scores, 3)
	assert.Equal(t, 4, report.Observations)

	byID := make(map[schema.MetricID]schema.MetricScore)
	for _, s := range report.Scores {
		byID[s.ID] = s
		assert.Equal(t, 4, s.Pairs)
		assert.Equal(t, 0, s.Dropped)
	}
	assert.InDelta(t, 0.5, byID[schema.MSEMetric].Value, 1e-12)
	assert.InDelta(t, 0.5, byID[schema.MAEMetric].Value, 1e-12)
	assert.InDelta(t, (0.5+1.0/3.0)/4.0, byID[schema.MAPEMetric].Value, 1e-12)
}

func TestBuildReportIgnoreNaNs(t *testing.T) {
	cfg, dir := scoreConfig(t)
	cfg.TruthPath = writeSeriesCSV(t, dir, "truth2.csv", "y\n1\nNaN\n3\n4\n")
	cfg.EstimatePath = writeSeriesCSV(t, dir, "estimate2.csv", "y\n1\n3\nNaN\n4\n")
	cfg.IgnoreNaNs = true
	cfg.Metrics = []schema.MetricID{schema.MAEMetric}

	input, err := loadScoreInput(cfg)
	require.NoError(t, err)

	report, err := buildReport(context.Background(), cfg, input)
	require.NoError(t, err)
	require.Len(t, report.Scores, 1)
	assert.Equal(t, 2, report.Scores[0].Pairs)
	assert.Equal(t, 2, report.Scores[0].Dropped)
	assert.Equal(t, 0.0, report.Scores[0].Value)
}

func TestBuildReportMASE(t *testing.T) {
	cfg, dir := scoreConfig(t)
	cfg.TruthPath = writeSeriesCSV(t, dir, "truth3.csv", "y\n13\n14\n15\n16\n")
	cfg.EstimatePath = writeSeriesCSV(t, dir, "estimate3.csv", "y\n12\n15\n14\n18\n")
	cfg.TrainPath = writeSeriesCSV(t, dir, "train3.csv", "y\n10\n12\n11\n13\n12\n14\n")
	cfg.Metrics = []schema.MetricID{schema.MASEMetric}

	input, err := loadScoreInput(cfg)
	require.NoError(t, err)

	report, err := buildReport(context.Background(), cfg, input)
	require.NoError(t, err)
	require.Len(t, report.Scores, 1)
	// naive MAE on the training series is 1.6; mean(|e|) is 1.25.
	assert.InDelta(t, 1.25/1.6, report.Scores[0].Value, 1e-12)
}

func TestBuildReportCancelled(t *testing.T) {
	cfg, _ := scoreConfig(t)
	input, err := loadScoreInput(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = buildReport(ctx, cfg, input)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreOneUnknownMetric(t *testing.T) {
	cfg, _ := scoreConfig(t)
	_, err := scoreOne(schema.MetricID("bogus"), cfg, &scoreInput{
		yTrue:      []float64{1},
		yEstimated: []float64{1},
	})
	require.Error(t, err)
}

func TestCountPairedNaNs(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0, countPairedNaNs([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 2, countPairedNaNs([]float64{1, nan, 3}, []float64{1, 2, nan}))
	assert.Equal(t, 1, countPairedNaNs([]float64{nan}, []float64{nan}))
}
