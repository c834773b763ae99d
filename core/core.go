// Package core has core logic for scoring, data preparation and display.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/scorecast/scorecast/dataprep"
	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/internal/outwriter"
	"github.com/scorecast/scorecast/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteScore scores an estimate series against a truth series and prints
// the report. It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	input, err := loadScoreInput(cfg)
	if err != nil {
		return err
	}

	report, err := buildReport(ctx, cfg, input)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteReport(report, cfg, duration)
}

// ExecutePrep cleans a raw listings-style CSV and prints the result.
// It serves as the main entry point for the 'prep' command.
func ExecutePrep(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.InputPath, err)
	}
	defer func() { _ = file.Close() }()

	df, tags, err := dataprep.LoadListings(file, dataprep.Options{
		PriceColumns: cfg.PriceColumns,
		BoolColumns:  cfg.BoolColumns,
		ExpandColumn: cfg.ExpandColumn,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare %s: %w", cfg.InputPath, err)
	}

	summary := schema.PrepSummary{
		InputPath:      cfg.InputPath,
		Rows:           df.Nrow(),
		Columns:        df.Ncol(),
		PriceColumns:   cfg.PriceColumns,
		BoolColumns:    cfg.BoolColumns,
		ExpandedColumn: cfg.ExpandColumn,
		Tags:           tags,
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WritePrep(df, summary, cfg, duration)
}

// ExecuteFormulas prints the metric definitions. It serves as the main entry
// point for the 'formulas' command.
func ExecuteFormulas(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteFormulas(cfg)
}
