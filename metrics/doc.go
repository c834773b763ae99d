// Package metrics computes forecast-accuracy measures between a true series
// and an estimated series.
//
// Two layers are exposed. Pointwise functions map equal-length sequences to a
// per-observation error sequence:
//
//	se, err := metrics.SquaredError(yTrue, yEstimated)
//
// Aggregate functions reduce the pointwise errors to a single scalar mean and
// are the usual scoring entry points:
//
//	mse, err := metrics.MeanSquaredError(yTrue, yEstimated)
//
// Missing observations are represented as NaN and propagate through every
// plain metric. The IgnoringNaNs wrapper produces a tolerant variant that
// drops observation pairs where either side is NaN before aggregating:
//
//	mae, err := metrics.MeanAbsoluteErrorIgnoringNaNs(yTrue, yEstimated)
//
// Division by zero in the percentage-error variants yields ±Inf or NaN per
// IEEE-754 rather than an error; callers that need zero-safe
// behavior must pre-filter their inputs. These signatures are depended on by
// downstream scoring pipelines, so changes must stay backward compatible.
package metrics
