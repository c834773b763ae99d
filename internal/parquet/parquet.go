// Package parquet exports scoring reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/scorecast/scorecast/schema"
)

// ReportRow represents a single computed metric in a scoring run.
type ReportRow struct {
	// MetricID is the short metric identifier (mse, mae, ...)
	MetricID string `parquet:"metric_id,snappy"`

	// MetricName is the long display name
	MetricName string `parquet:"metric_name,snappy"`

	// Value is the aggregate score; NaN and ±Inf are stored as-is
	Value float64 `parquet:"value,snappy"`

	// Pairs is the number of observation pairs aggregated
	Pairs int32 `parquet:"pairs,snappy"`

	// Dropped is the number of pairs removed by NaN filtering
	Dropped int32 `parquet:"dropped,snappy"`

	// IgnoreNaNs records whether the tolerant variant was used
	IgnoreNaNs bool `parquet:"ignore_nans,snappy"`

	// SeasonalPeriod is the naïve forecast lag used for scaled error
	SeasonalPeriod int32 `parquet:"seasonal_period,snappy"`

	// TruthPath and EstimatePath identify the scored inputs
	TruthPath    string `parquet:"truth_path,snappy"`
	EstimatePath string `parquet:"estimate_path,snappy"`

	// TrainPath is the training series path, empty when unused
	TrainPath string `parquet:"train_path,optional,snappy"`

	// CreatedAt is when the run produced this row
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// RowsFromReport flattens a report into parquet rows, stamped with now.
func RowsFromReport(report schema.Report, now time.Time) []ReportRow {
	rows := make([]ReportRow, 0, len(report.Scores))
	for _, s := range report.Scores {
		rows = append(rows, ReportRow{
			MetricID:       string(s.ID),
			MetricName:     s.Name,
			Value:          s.Value,
			Pairs:          int32(s.Pairs),
			Dropped:        int32(s.Dropped),
			IgnoreNaNs:     report.IgnoreNaNs,
			SeasonalPeriod: int32(report.SeasonalPeriod),
			TruthPath:      report.TruthPath,
			EstimatePath:   report.EstimatePath,
			TrainPath:      report.TrainPath,
			CreatedAt:      now,
		})
	}
	return rows
}

// WriteReportParquet writes report rows to a Parquet file. The schema is
// derived from the ReportRow struct tags.
func WriteReportParquet(rows []ReportRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ReportRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
