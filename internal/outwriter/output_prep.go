package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/olekukonko/tablewriter"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/schema"
)

// PrintPrep outputs the result of a data-preparation run. CSV and JSON
// write the cleaned dataset itself; the default text mode prints a summary
// without dumping the full frame.
func PrintPrep(df dataframe.DataFrame, summary schema.PrepSummary, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		switch cfg.Output {
		case schema.CSVOut:
			if err := df.WriteCSV(w); err != nil {
				return fmt.Errorf("failed to write cleaned CSV: %w", err)
			}
			return nil
		case schema.JSONOut:
			if err := df.WriteJSON(w); err != nil {
				return fmt.Errorf("failed to write cleaned JSON: %w", err)
			}
			return nil
		default:
			return writePrepSummaryTable(w, summary, duration)
		}
	}, "Wrote cleaned dataset")
}

// writePrepSummaryTable writes the prep summary as a human-readable table.
func writePrepSummaryTable(w io.Writer, summary schema.PrepSummary, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Field", "Value"})

	data := [][]string{
		{"Input", summary.InputPath},
		{"Rows", strconv.Itoa(summary.Rows)},
		{"Columns", strconv.Itoa(summary.Columns)},
	}
	if len(summary.PriceColumns) > 0 {
		data = append(data, []string{"Price columns", strings.Join(summary.PriceColumns, ", ")})
	}
	if len(summary.BoolColumns) > 0 {
		data = append(data, []string{"Bool columns", strings.Join(summary.BoolColumns, ", ")})
	}
	if summary.ExpandedColumn != "" {
		data = append(data, []string{"Expanded column", summary.ExpandedColumn})
		data = append(data, []string{"Tags", strconv.Itoa(len(summary.Tags))})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(summary.Tags) > 0 {
		if _, err := fmt.Fprintf(w, "\nExpanded %d tags: %s\n", len(summary.Tags), strings.Join(summary.Tags, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nPrepared %d rows in %s (use --output csv to write the dataset)\n",
		summary.Rows, duration.Round(time.Millisecond))
	return err
}
