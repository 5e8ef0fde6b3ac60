package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResample(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		m        int
		expected []int
	}{
		{
			name:     "empty input",
			values:   []float64{},
			m:        5,
			expected: []int{},
		},
		{
			name:     "zero target length",
			values:   []float64{1, 2, 3},
			m:        0,
			expected: []int{},
		},
		{
			name:     "single sample repeats",
			values:   []float64{42.4},
			m:        4,
			expected: []int{42, 42, 42, 42},
		},
		{
			name:     "two points upsampled",
			values:   []float64{0, 100},
			m:        5,
			expected: []int{0, 25, 50, 75, 100},
		},
		{
			name:     "same length is the rounded input",
			values:   []float64{1.2, 2.7, 3.5, 4.1},
			m:        4,
			expected: []int{1, 3, 4, 4},
		},
		{
			name:     "downsampling keeps the endpoints",
			values:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			m:        3,
			expected: []int{0, 50, 100},
		},
		{
			name:     "target of one keeps the first sample",
			values:   []float64{7, 90, 3},
			m:        1,
			expected: []int{7},
		},
		{
			name:     "constant input stays constant",
			values:   []float64{1500, 1500, 1500},
			m:        6,
			expected: []int{1500, 1500, 1500, 1500, 1500, 1500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resample(tt.values, tt.m))
		})
	}
}

// Resampling down and back up again must preserve the direction of
// change for monotonic inputs.
func TestResampleRoundTripKeepsTrend(t *testing.T) {
	original := []float64{1000, 1050, 1080, 1120, 1190, 1230, 1260, 1330, 1390, 1450}

	down := Resample(original, 5)
	back := make([]float64, len(down))
	for i, v := range down {
		back[i] = float64(v)
	}
	up := Resample(back, len(original))

	assert.Len(t, up, len(original))
	for i := 1; i < len(up); i++ {
		assert.GreaterOrEqual(t, up[i], up[i-1])
	}
}

// Output length is always exactly m for non-empty inputs.
func TestResampleOutputLength(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	for _, m := range []int{1, 2, 7, 8, 9, 50} {
		assert.Len(t, Resample(values, m), m)
	}
}
