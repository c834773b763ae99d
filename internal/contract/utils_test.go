package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel checks the Lewis scale thresholds and the non-finite
// passthrough.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		expected string
	}{
		{"excellent", 0.05, ExcellentValue},
		{"boundary to good", 0.10, GoodValue},
		{"good", 0.15, GoodValue},
		{"fair", 0.35, FairValue},
		{"poor", 0.50, PoorValue},
		{"very poor", 3.2, PoorValue},
		{"nan has no label", math.NaN(), NoLabelValue},
		{"inf has no label", math.Inf(1), NoLabelValue},
		{"negative inf has no label", math.Inf(-1), NoLabelValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.fraction))
		})
	}
}

// TestGetColorLabel checks that the colored label contains the plain text.
func TestGetColorLabel(t *testing.T) {
	for _, fraction := range []float64{0.01, 0.15, 0.3, 0.9, math.NaN()} {
		assert.Contains(t, GetColorLabel(fraction), GetPlainLabel(fraction))
	}
}
