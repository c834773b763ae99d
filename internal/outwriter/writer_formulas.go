package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/schema"
)

// buildFormulasRenderModel assembles the static metric definitions for
// display.
func buildFormulasRenderModel() *schema.FormulasRenderModel {
	return &schema.FormulasRenderModel{
		Title:       "Forecast-accuracy metric definitions",
		Description: "t = true value, e = estimated value, m = seasonal period. Division by zero yields ±Inf/NaN rather than an error.",
		Formulas:    schema.GetFormulas(),
	}
}

// PrintFormulas outputs the metric definitions, dispatching based on the
// output format configured. No scoring is performed.
func PrintFormulas(cfg *contract.Config) error {
	renderModel := buildFormulasRenderModel()

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		switch cfg.Output {
		case schema.JSONOut:
			return writeJSON(w, renderModel)
		case schema.CSVOut:
			return writeCSVFormulas(w, renderModel)
		default:
			return writeFormulasTable(w, renderModel, cfg)
		}
	}, "Wrote formulas")
}

// writeFormulasTable writes the definitions as a human-readable table.
func writeFormulasTable(w io.Writer, renderModel *schema.FormulasRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", renderModel.Title, renderModel.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Name", "Formula", "Notes"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	notesWidth := GetMaxNotesWidth(cfg)
	var data [][]string
	for _, f := range renderModel.Formulas {
		data = append(data, []string{
			string(f.ID),
			f.Name,
			f.Expression,
			truncateText(f.Notes, notesWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVFormulas writes the definitions in CSV format.
func writeCSVFormulas(w io.Writer, renderModel *schema.FormulasRenderModel) error {
	header := []string{"metric", "name", "formula", "notes"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, f := range renderModel.Formulas {
			record := []string{string(f.ID), f.Name, f.Expression, f.Notes}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
