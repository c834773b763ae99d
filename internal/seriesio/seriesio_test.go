package seriesio

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadCSVFromReader covers header handling, named column selection and
// the missing-token convention.
func TestLoadCSVFromReader(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		opts     *Options
		expected []float64
		nanAt    []int
	}{
		{
			name:     "default y column",
			csv:      "ds,y\n2024-01-01,1.5\n2024-01-02,2.5\n",
			opts:     nil,
			expected: []float64{1.5, 2.5},
		},
		{
			name:     "named column",
			csv:      "actual,estimate\n10,11\n20,19\n",
			opts:     &Options{ValueColumn: "actual", HasHeader: true, Delimiter: ','},
			expected: []float64{10, 20},
		},
		{
			name:     "fallback to last column",
			csv:      "ds,value\n2024-01-01,3\n",
			opts:     nil,
			expected: []float64{3},
		},
		{
			name:     "no header uses last column",
			csv:      "1,4.5\n2,5.5\n",
			opts:     &Options{HasHeader: false, Delimiter: ','},
			expected: []float64{4.5, 5.5},
		},
		{
			name:     "missing tokens load as NaN",
			csv:      "y\n1\nNaN\nNA\nnull\n4\n",
			opts:     nil,
			expected: []float64{1, 0, 0, 0, 4},
			nanAt:    []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := LoadCSVFromReader(strings.NewReader(tt.csv), tt.opts)
			require.NoError(t, err)
			require.Len(t, values, len(tt.expected))

			nanSet := make(map[int]bool)
			for _, i := range tt.nanAt {
				nanSet[i] = true
			}
			for i, v := range values {
				if nanSet[i] {
					assert.True(t, math.IsNaN(v), "index %d", i)
				} else {
					assert.InDelta(t, tt.expected[i], v, 1e-12, "index %d", i)
				}
			}
		})
	}
}

// TestLoadCSVFromReaderErrors covers the hard failures: empty input and
// non-numeric cells that are not missing tokens.
func TestLoadCSVFromReaderErrors(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = LoadCSVFromReader(strings.NewReader("y\nabc\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abc")
}

// TestSaveCSVRoundTrip checks that NaN survives a save/load cycle.
func TestSaveCSVRoundTrip(t *testing.T) {
	values := []float64{1.25, math.NaN(), -3}

	var sb strings.Builder
	require.NoError(t, SaveCSV(&sb, values))

	loaded, err := LoadCSVFromReader(strings.NewReader(sb.String()), nil)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, 1.25, loaded[0])
	assert.True(t, math.IsNaN(loaded[1]))
	assert.Equal(t, -3.0, loaded[2])
}
