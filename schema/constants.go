package schema

// Custom string types for type safety.
type (
	// MetricID identifies an aggregate metric.
	MetricID string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All metrics supported.
const (
	MSEMetric   MetricID = "mse"
	MAEMetric   MetricID = "mae"
	MAPEMetric  MetricID = "mape"
	MAAPEMetric MetricID = "maape"
	MASEMetric  MetricID = "mase"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// AllMetricIDs lists every metric in display order.
var AllMetricIDs = []MetricID{MSEMetric, MAEMetric, MAPEMetric, MAAPEMetric, MASEMetric}

// ValidMetricIDs lists all valid metric identifiers.
var ValidMetricIDs = map[MetricID]struct{}{
	MSEMetric:   {},
	MAEMetric:   {},
	MAPEMetric:  {},
	MAAPEMetric: {},
	MASEMetric:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// MetricName returns the long display name of a metric.
func MetricName(id MetricID) string {
	switch id {
	case MSEMetric:
		return "Mean Squared Error"
	case MAEMetric:
		return "Mean Absolute Error"
	case MAPEMetric:
		return "Mean Absolute Percentage Error"
	case MAAPEMetric:
		return "Mean Adjusted Absolute Percentage Error"
	case MASEMetric:
		return "Mean Absolute Scaled Error"
	default:
		return string(id)
	}
}

// IsPercentage reports whether a metric's value is a percentage-scale
// fraction, which is what the qualitative accuracy labels apply to.
func IsPercentage(id MetricID) bool {
	return id == MAPEMetric || id == MAAPEMetric
}
