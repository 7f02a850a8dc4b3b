package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-sigkernel/internal/mathutil"
	"github.com/tphakala/go-sigkernel/internal/testutil"
)

func TestKaiserWindow_Symmetry(t *testing.T) {
	tests := []struct {
		name   string
		length int
		beta   float64
	}{
		{"length_11_beta_5", 11, 5.0},
		{"length_21_beta_8", 21, 8.653728},
		{"length_50_beta_10", 50, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := KaiserWindow(tt.length, tt.beta)
			assert.Len(t, window, tt.length)
			testutil.AssertSymmetric(t, window, testutil.WindowTolerance)
			testutil.AssertAllInRange(t, window, 0, 1)
		})
	}
}

func TestKaiserWindow_CenterTap(t *testing.T) {
	window := KaiserWindow(21, 8.0)
	testutil.AssertCenterIsMax(t, window)
	assert.InDelta(t, 1.0, window[10], testutil.WindowTolerance)

	// the edges sit at 1/I₀(β)
	assert.InDelta(t, 1/mathutil.BesselI0(8.0), window[0], testutil.WindowTolerance)
}

func TestKaiserWindow_EdgeCases(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, 5))
	assert.Empty(t, KaiserWindow(-1, 5))
	assert.Equal(t, []float64{1}, KaiserWindow(1, 5))
	assert.Len(t, KaiserWindow(2, 5), 2)
}

func TestKaiserAt(t *testing.T) {
	assert.InDelta(t, 1.0, KaiserAt(0, 3, 6), testutil.WindowTolerance)
	assert.Zero(t, KaiserAt(3.5, 3, 6))
	assert.Zero(t, KaiserAt(-3.01, 3, 6))
	assert.InDelta(t, KaiserAt(1.2, 3, 6), KaiserAt(-1.2, 3, 6), testutil.WindowTolerance)

	// β = 0 is rectangular
	assert.InDelta(t, 1.0, KaiserAt(2.9, 3, 0), testutil.WindowTolerance)
}
