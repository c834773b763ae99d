// Package schema has configs, models and shared constants for all parts of scorecast.
package schema

import (
	"encoding/json"
	"math"
)

// MetricScore is one computed aggregate metric in a scoring run.
type MetricScore struct {
	ID      MetricID `json:"id"`
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Pairs   int      `json:"pairs"`   // observation pairs aggregated
	Dropped int      `json:"dropped"` // pairs removed by NaN filtering
}

// MarshalJSON renders non-finite values as strings, since encoding/json
// rejects NaN and ±Inf float64 values outright.
func (s MetricScore) MarshalJSON() ([]byte, error) {
	type shadow struct {
		ID      MetricID `json:"id"`
		Name    string   `json:"name"`
		Value   any      `json:"value"`
		Pairs   int      `json:"pairs"`
		Dropped int      `json:"dropped"`
	}
	out := shadow{ID: s.ID, Name: s.Name, Value: s.Value, Pairs: s.Pairs, Dropped: s.Dropped}
	switch {
	case math.IsNaN(s.Value):
		out.Value = "NaN"
	case math.IsInf(s.Value, 1):
		out.Value = "+Inf"
	case math.IsInf(s.Value, -1):
		out.Value = "-Inf"
	}
	return json.Marshal(out)
}

// Report bundles the scores of a single run together with the inputs that
// produced them.
type Report struct {
	TruthPath      string        `json:"truth_path"`
	EstimatePath   string        `json:"estimate_path"`
	TrainPath      string        `json:"train_path,omitempty"`
	SeasonalPeriod int           `json:"seasonal_period"`
	IgnoreNaNs     bool          `json:"ignore_nans"`
	Observations   int           `json:"observations"`
	Scores         []MetricScore `json:"scores"`
}

// PrepSummary describes the outcome of a data-preparation run.
type PrepSummary struct {
	InputPath      string   `json:"input_path"`
	Rows           int      `json:"rows"`
	Columns        int      `json:"columns"`
	PriceColumns   []string `json:"price_columns,omitempty"`
	BoolColumns    []string `json:"bool_columns,omitempty"`
	ExpandedColumn string   `json:"expanded_column,omitempty"`
	Tags           []string `json:"tags,omitempty"` // indicator columns added by expansion
}
