package outwriter

import (
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/scorecast/scorecast/internal/contract"
	"github.com/scorecast/scorecast/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a scoring report using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WritePrep prints a data-preparation result using the configured output format.
func (ow *OutWriter) WritePrep(df dataframe.DataFrame, summary schema.PrepSummary, cfg *contract.Config, duration time.Duration) error {
	return PrintPrep(df, summary, cfg, duration)
}

// WriteFormulas prints the metric definitions using the configured output format.
func (ow *OutWriter) WriteFormulas(cfg *contract.Config) error {
	return PrintFormulas(cfg)
}
