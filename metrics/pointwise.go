package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrShapeMismatch reports paired sequences of unequal length.
var ErrShapeMismatch = errors.New("sequence length mismatch")

// ErrSeasonalPeriod reports a seasonal period below 1.
var ErrSeasonalPeriod = errors.New("seasonal period must be at least 1")

// checkPair validates that two paired sequences have equal length.
func checkPair(yTrue, yEstimated []float64) error {
	if len(yTrue) != len(yEstimated) {
		return fmt.Errorf("%w: len(y_true)=%d, len(y_estimated)=%d",
			ErrShapeMismatch, len(yTrue), len(yEstimated))
	}
	return nil
}

// SquaredError returns the element-wise squared error (t-e)^2.
// NaN on either side propagates to the corresponding element.
func SquaredError(yTrue, yEstimated []float64) ([]float64, error) {
	if err := checkPair(yTrue, yEstimated); err != nil {
		return nil, err
	}
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		d := yTrue[i] - yEstimated[i]
		out[i] = d * d
	}
	return out, nil
}

// AbsoluteError returns the element-wise absolute error |t-e|.
func AbsoluteError(yTrue, yEstimated []float64) ([]float64, error) {
	if err := checkPair(yTrue, yEstimated); err != nil {
		return nil, err
	}
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = math.Abs(yTrue[i] - yEstimated[i])
	}
	return out, nil
}

// AbsolutePercentageError returns the element-wise |(t-e)/t|.
//
// Known issues:
//   - Not symmetric: y_true and y_estimated do not play a symmetric role,
//     and over- and under-forecasts are not treated equally.
//   - A zero true value yields ±Inf (or NaN when the estimate is also zero).
//     The degeneracy is propagated, never suppressed.
func AbsolutePercentageError(yTrue, yEstimated []float64) ([]float64, error) {
	if err := checkPair(yTrue, yEstimated); err != nil {
		return nil, err
	}
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = math.Abs((yTrue[i] - yEstimated[i]) / yTrue[i])
	}
	return out, nil
}

// AdjustedAbsolutePercentageError returns the element-wise
// |(t-e)/(|t|+|e|)|, a symmetric-MAPE variant bounded in [0,1] wherever the
// denominator is nonzero. A pair of zeros yields NaN (0/0).
//
// Reference: https://en.wikipedia.org/wiki/Symmetric_mean_absolute_percentage_error
func AdjustedAbsolutePercentageError(yTrue, yEstimated []float64) ([]float64, error) {
	if err := checkPair(yTrue, yEstimated); err != nil {
		return nil, err
	}
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = math.Abs((yTrue[i] - yEstimated[i]) / (math.Abs(yTrue[i]) + math.Abs(yEstimated[i])))
	}
	return out, nil
}

// AbsoluteScaledError returns the element-wise absolute error of the forecast
// divided by the mean absolute error of the naïve seasonal forecast on the
// training series, Forecasted[t] = Actual[t-m].
//
// The measure is scale invariant and behaves predictably around zero.
// seasonalPeriod is 1 for non-seasonal series. A constant training series
// produces a zero denominator and the result goes to ±Inf/NaN by ordinary
// division semantics.
//
// Reference: Hyndman, "Another look at measures of forecast accuracy".
func AbsoluteScaledError(yTrain, yTrue, yEstimated []float64, seasonalPeriod int) ([]float64, error) {
	if seasonalPeriod < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSeasonalPeriod, seasonalPeriod)
	}
	maeNaive, err := naiveForecastMAE(yTrain, seasonalPeriod)
	if err != nil {
		return nil, err
	}
	out, err := AbsoluteError(yTrue, yEstimated)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] /= maeNaive
	}
	return out, nil
}

// naiveForecastMAE computes the mean absolute error of the forecast that
// repeats the value observed m periods earlier, over the training series.
// When m >= len(yTrain) both naïve slices are empty and the mean is NaN,
// matching the mean-of-empty convention used throughout the package.
func naiveForecastMAE(yTrain []float64, m int) (float64, error) {
	if m >= len(yTrain) {
		return math.NaN(), nil
	}
	ae, err := AbsoluteError(yTrain[m:], yTrain[:len(yTrain)-m])
	if err != nil {
		return 0, err
	}
	return stat.Mean(ae, nil), nil
}
