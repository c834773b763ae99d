package metrics

import "gonum.org/v1/gonum/stat"

// Metric is an aggregate scoring function over paired observations. All mean
// metrics in this package, and anything produced by IgnoringNaNs or Negated,
// satisfy this signature.
type Metric func(yTrue, yEstimated []float64) (float64, error)

// MeanSquaredError returns the arithmetic mean of SquaredError.
// The mean of an empty sequence is NaN.
func MeanSquaredError(yTrue, yEstimated []float64) (float64, error) {
	pe, err := SquaredError(yTrue, yEstimated)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pe, nil), nil
}

// MeanAbsoluteError returns the arithmetic mean of AbsoluteError.
func MeanAbsoluteError(yTrue, yEstimated []float64) (float64, error) {
	pe, err := AbsoluteError(yTrue, yEstimated)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pe, nil), nil
}

// MeanAbsolutePercentageError returns the arithmetic mean of
// AbsolutePercentageError, with that function's zero-division caveats.
func MeanAbsolutePercentageError(yTrue, yEstimated []float64) (float64, error) {
	pe, err := AbsolutePercentageError(yTrue, yEstimated)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pe, nil), nil
}

// MeanAdjustedAbsolutePercentageError returns the arithmetic mean of
// AdjustedAbsolutePercentageError.
func MeanAdjustedAbsolutePercentageError(yTrue, yEstimated []float64) (float64, error) {
	pe, err := AdjustedAbsolutePercentageError(yTrue, yEstimated)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pe, nil), nil
}

// MeanAbsoluteScaledError returns the arithmetic mean of AbsoluteScaledError.
// seasonalPeriod is forwarded unchanged to the pointwise function.
func MeanAbsoluteScaledError(yTrain, yTrue, yEstimated []float64, seasonalPeriod int) (float64, error) {
	pe, err := AbsoluteScaledError(yTrain, yTrue, yEstimated, seasonalPeriod)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pe, nil), nil
}
