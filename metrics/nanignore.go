package metrics

import "math"

// filterPairedNaNs builds filtered copies of the paired sequences containing
// only the positions where neither side is NaN, preserving relative order.
// Callers must have validated equal lengths.
func filterPairedNaNs(yTrue, yEstimated []float64) ([]float64, []float64) {
	ft := make([]float64, 0, len(yTrue))
	fe := make([]float64, 0, len(yEstimated))
	for i := range yTrue {
		if math.IsNaN(yTrue[i]) || math.IsNaN(yEstimated[i]) {
			continue
		}
		ft = append(ft, yTrue[i])
		fe = append(fe, yEstimated[i])
	}
	return ft, fe
}

// IgnoringNaNs wraps a metric so that observation pairs with a NaN on either
// side are dropped before the metric runs. On NaN-free input the wrapped
// metric returns exactly the value of the original. When every pair is
// dropped the underlying mean operates on an empty sequence and returns NaN,
// not an error.
func IgnoringNaNs(metric Metric) Metric {
	return func(yTrue, yEstimated []float64) (float64, error) {
		if err := checkPair(yTrue, yEstimated); err != nil {
			return 0, err
		}
		ft, fe := filterPairedNaNs(yTrue, yEstimated)
		return metric(ft, fe)
	}
}

// Negated flips a metric's sign, for scoring conventions where higher must
// mean better.
func Negated(metric Metric) Metric {
	return func(yTrue, yEstimated []float64) (float64, error) {
		v, err := metric(yTrue, yEstimated)
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
}

// NaN-tolerant variants of every mean metric.
var (
	MeanSquaredErrorIgnoringNaNs                    = IgnoringNaNs(MeanSquaredError)
	MeanAbsoluteErrorIgnoringNaNs                   = IgnoringNaNs(MeanAbsoluteError)
	MeanAbsolutePercentageErrorIgnoringNaNs         = IgnoringNaNs(MeanAbsolutePercentageError)
	NegMeanAbsolutePercentageErrorIgnoringNaNs      = IgnoringNaNs(Negated(MeanAbsolutePercentageError))
	MeanAdjustedAbsolutePercentageErrorIgnoringNaNs = IgnoringNaNs(MeanAdjustedAbsolutePercentageError)
)

// MeanAbsoluteScaledErrorIgnoringNaNs is the NaN-tolerant variant of
// MeanAbsoluteScaledError. Only the y_true/y_estimated pair is filtered; the
// training series is passed through untouched, and seasonalPeriod is
// forwarded unchanged.
func MeanAbsoluteScaledErrorIgnoringNaNs(yTrain, yTrue, yEstimated []float64, seasonalPeriod int) (float64, error) {
	if err := checkPair(yTrue, yEstimated); err != nil {
		return 0, err
	}
	ft, fe := filterPairedNaNs(yTrue, yEstimated)
	return MeanAbsoluteScaledError(yTrain, ft, fe, seasonalPeriod)
}
