package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/internal/parquet"
	"github.com/scorecast/scorecast/schema"
)

// PrintReport outputs a scoring report, dispatching based on the output
// format configured.
func PrintReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.RowsFromReport(report, time.Now())
		if err := parquet.WriteReportParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote report to %s\n", cfg.OutputFile)
		return nil
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		switch cfg.Output {
		case schema.JSONOut:
			return writeJSON(w, report)
		case schema.CSVOut:
			return writeCSVReport(w, report, cfg)
		default:
			return writeReportTable(w, report, cfg, duration)
		}
	}, "Wrote report")
}

// writeReportTable writes the scores as a human-readable table.
func writeReportTable(w io.Writer, report schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := []string{"Metric", "Name", "Value", "Pairs", "Dropped", "Accuracy"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range report.Scores {
		label := contract.NoLabelValue
		if schema.IsPercentage(s.ID) {
			if cfg.UseColors {
				label = contract.GetColorLabel(s.Value)
			} else {
				label = contract.GetPlainLabel(s.Value)
			}
		}
		data = append(data, []string{
			string(s.ID),
			s.Name,
			fmtFloat(s.Value),
			fmt.Sprintf(intFmt, s.Pairs),
			fmt.Sprintf(intFmt, s.Dropped),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nScored %d observation pairs in %s\n",
		report.Observations, duration.Round(time.Millisecond))
	return err
}

// writeCSVReport writes the scores in CSV format.
func writeCSVReport(w io.Writer, report schema.Report, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	header := []string{"metric", "name", "value", "pairs", "dropped", "accuracy"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, s := range report.Scores {
			label := ""
			if schema.IsPercentage(s.ID) {
				label = contract.GetPlainLabel(s.Value)
			}
			record := []string{
				string(s.ID),
				s.Name,
				fmtFloat(s.Value),
				strconv.Itoa(s.Pairs),
				strconv.Itoa(s.Dropped),
				label,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
