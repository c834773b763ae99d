package outwriter

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/schema"
)

func sampleReport() schema.Report {
	return schema.Report{
		TruthPath:      "truth.csv",
		EstimatePath:   "estimate.csv",
		SeasonalPeriod: 1,
		Observations:   4,
		Scores: []schema.MetricScore{
			{ID: schema.MSEMetric, Name: schema.MetricName(schema.MSEMetric), Value: 2.5, Pairs: 4},
			{ID: schema.MAPEMetric, Name: schema.MetricName(schema.MAPEMetric), Value: 0.125, Pairs: 4},
			{ID: schema.MAAPEMetric, Name: schema.MetricName(schema.MAAPEMetric), Value: math.Inf(1), Pairs: 4},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Precision: 4,
		Output:    schema.TextOut,
		Width:     120,
		UseColors: false,
	}
}

// TestWriteReportTable checks the table rendering, accuracy labels and the
// verbatim Inf formatting.
func TestWriteReportTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeReportTable(&buf, sampleReport(), textConfig(), 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "mse")
	assert.Contains(t, out, "2.5000")
	assert.Contains(t, out, contract.GoodValue) // 12.5% MAPE
	assert.Contains(t, out, "+Inf")
	assert.Contains(t, out, "Scored 4 observation pairs")
}

// TestWriteCSVReport checks the CSV rows and that only percentage metrics
// carry a label.
func TestWriteCSVReport(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVReport(&buf, sampleReport(), textConfig())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "metric,name,value,pairs,dropped,accuracy", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "mse,"))
	assert.True(t, strings.HasSuffix(lines[1], ","), "mse row has no accuracy label")
	assert.Contains(t, lines[2], contract.GoodValue)
	assert.Contains(t, lines[3], "+Inf")
}

// TestPrintReportJSON runs the dispatcher end to end into a file.
func TestPrintReportJSON(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, PrintReport(sampleReport(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"truth_path": "truth.csv"`)
	assert.Contains(t, string(data), `"+Inf"`)
}

// TestPrintReportParquetNeedsFile checks the guard against binary output to
// stdout.
func TestPrintReportParquetNeedsFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut

	err := PrintReport(sampleReport(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

// TestPrintReportParquet writes a parquet report end to end.
func TestPrintReportParquet(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.parquet")

	require.NoError(t, PrintReport(sampleReport(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
