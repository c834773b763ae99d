// Package contract has configuration processing and shared CLI helpers.
package contract

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
)

// Accuracy label constants, following the Lewis interpretation scale for
// percentage errors.
const (
	ExcellentValue = "Excellent" // below 10% error
	GoodValue      = "Good"      // below 20% error
	FairValue      = "Fair"      // below 50% error
	PoorValue      = "Poor"      // 50% error or worse
	NoLabelValue   = "-"         // metric has no percentage interpretation
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text accuracy label for a percentage-error
// fraction. Non-finite values carry no label: NaN and ±Inf come straight
// from the documented zero-division policy and must stay visible as such.
func GetPlainLabel(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return NoLabelValue
	}
	switch {
	case fraction < 0.10:
		return ExcellentValue
	case fraction < 0.20:
		return GoodValue
	case fraction < 0.50:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored accuracy label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(fraction float64) string {
	text := GetPlainLabel(fraction)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	case PoorValue:
		return PoorColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
