package sigkernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sigkernel/internal/testutil"
)

func TestDiracInterpolate_LinearKernel(t *testing.T) {
	got, err := DiracInterpolate([]float64{0, 1, 2}, []float64{1, 0, 1}, 2, 5, 1, Linear)
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, []float64{1, 0.5, 0, 0.5, 1, 0.5}, got, testutil.DefaultTolerance)
}

func TestDiracInterpolate_Ratio1IsIdentity(t *testing.T) {
	y := []float64{3, -1, 2, 7}
	got, err := DiracInterpolate([]float64{0, 1, 2, 3}, y, 1, 3, 0.5, Linear)
	require.NoError(t, err)
	// the three-tap kernel is [0, 1, 0]
	testutil.AssertSlicesInDelta(t, y, got, testutil.DefaultTolerance)
}

func TestDiracInterpolate_OutputLength(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 3, 4, 5}
	for _, ratio := range []float64{1, 2, 3, 8} {
		got, err := DiracInterpolate(x, y, ratio, 9, 1, Keys)
		require.NoError(t, err)
		assert.Len(t, got, int(ratio)*len(y))
	}
}

func TestDiracInterpolate_KernelLongerThanComb(t *testing.T) {
	got, err := DiracInterpolate([]float64{0, 1, 2}, []float64{1, 0, 1}, 2, 9, 4, Linear)
	require.NoError(t, err)
	// taps are 1-|x|/4 on [-1, 1]; each output sums two of them
	testutil.AssertSlicesInDelta(t, []float64{1.75, 1.75, 1.75, 1.75, 1.75, 0.9375}, got, testutil.DefaultTolerance)

	got, err = DiracInterpolate([]float64{0}, []float64{2}, 3, 17, 1, Keys)
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, []float64{2, 2 * keysWeight(0.125, defaultKeysAlpha), 2 * keysWeight(0.25, defaultKeysAlpha)}, got, testutil.DefaultTolerance)
}

func TestDiracInterpolate_Errors(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{1, 0, 1}

	tests := []struct {
		name    string
		x, y    []float64
		ratio   float64
		size    int
		width   float64
		wantErr error
	}{
		{"fractional ratio", x, y, 1.5, 5, 1, ErrInvalidRatio},
		{"zero ratio", x, y, 0, 5, 1, ErrInvalidRatio},
		{"infinite ratio", x, y, math.Inf(1), 5, 1, ErrInvalidRatio},
		{"nan ratio", x, y, math.NaN(), 5, 1, ErrInvalidRatio},
		{"overflowing ratio", x, y, 1e20, 5, 1, ErrInvalidRatio},
		{"even kernel", x, y, 2, 4, 1, ErrEvenKernelSize},
		{"negative kernel size", x, y, 2, -1, 1, ErrInvalidKernelSize},
		{"zero width", x, y, 2, 5, 0, ErrInvalidWidth},
		{"length mismatch", x, y[:2], 2, 5, 1, ErrLengthMismatch},
		{"empty", nil, nil, 2, 5, 1, ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DiracInterpolate(tt.x, tt.y, tt.ratio, tt.size, tt.width, Linear)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestKernelSamples(t *testing.T) {
	got, err := KernelSamples(Linear, 5, 1)
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, []float64{0, 0.5, 1, 0.5, 0}, got, testutil.DefaultTolerance)

	got, err = KernelSamples(Linear, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)

	_, err = KernelSamples(Linear, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidKernelSize)
}
