package schema

// FormulaInfo describes one metric for display purposes.
type FormulaInfo struct {
	ID         MetricID `json:"id"`
	Name       string   `json:"name"`
	Expression string   `json:"expression"`
	Notes      string   `json:"notes,omitempty"`
}

// FormulasRenderModel contains all processed data needed for displaying
// metric definitions.
type FormulasRenderModel struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Formulas    []FormulaInfo `json:"formulas"`
}

// GetFormulas returns the static definitions of every metric, in display order.
func GetFormulas() []FormulaInfo {
	return []FormulaInfo{
		{
			ID:         MSEMetric,
			Name:       MetricName(MSEMetric),
			Expression: "mean((t - e)^2)",
			Notes:      "Penalizes large errors quadratically.",
		},
		{
			ID:         MAEMetric,
			Name:       MetricName(MAEMetric),
			Expression: "mean(|t - e|)",
			Notes:      "Linear penalty; same unit as the series.",
		},
		{
			ID:         MAPEMetric,
			Name:       MetricName(MAPEMetric),
			Expression: "mean(|(t - e) / t|)",
			Notes:      "Asymmetric; blows up to ±Inf when a true value is 0.",
		},
		{
			ID:         MAAPEMetric,
			Name:       MetricName(MAAPEMetric),
			Expression: "mean(|(t - e) / (|t| + |e|)|)",
			Notes:      "Symmetric-MAPE variant bounded in [0,1]; 0/0 pair is NaN.",
		},
		{
			ID:         MASEMetric,
			Name:       MetricName(MASEMetric),
			Expression: "mean(|t - e| / mean(|train[m:] - train[:-m]|))",
			Notes:      "Scale invariant; normalized by the naive seasonal forecast (lag m) on the training series.",
		},
	}
}
