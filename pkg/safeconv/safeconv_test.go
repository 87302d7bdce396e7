package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int
		ok   bool
	}{
		{"zero", 0, 0, true},
		{"whole", 42, 42, true},
		{"negative_whole", -7, -7, true},
		{"fraction", 4.5, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"beyond_exact_range", 1 << 60, 0, false},
		{"exact_limit", 1 << 53, 1 << 53, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FloatToInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustFloatToInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, MustFloatToInt(6))
	assert.PanicsWithValue(t, "safeconv: float64 is not an exact integer", func() {
		MustFloatToInt(0.5)
	})
}

func TestIntToUint64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), IntToUint64(-3))
	assert.Equal(t, uint64(1024), IntToUint64(1024))
}
