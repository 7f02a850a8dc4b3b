package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sigkernel/internal/testutil"
)

const (
	convTolerance = 1e-10
	repeatTrials  = 10
)

func TestFull1D_ConcreteExample(t *testing.T) {
	got := Full1D([]float64{1, 2, 3}, []float64{0, 1, 0.5}, 1, 0)
	testutil.AssertSlicesInDelta(t, []float64{0, 1, 2.5, 4, 1.5}, got, convTolerance)
}

// TestFull1D_MatchesTextbook repeats random trials the way the reference
// property is stated: step 1, no padding, any lengths.
func TestFull1D_MatchesTextbook(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := range repeatTrials {
		n := 1 + rng.IntN(40)
		m := 1 + rng.IntN(12)
		x := testutil.RandomSignal(rng, n)
		k := testutil.RandomSignal(rng, m)

		got := Full1D(x, k, 1, 0)
		if !testutil.AssertSlicesInDelta(t, testutil.NaiveConvolveFull(x, k), got, convTolerance) {
			t.Fatalf("trial %d failed (n=%d, m=%d)", trial, n, m)
		}
	}
}

func TestValid1D_MatchesTextbook(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := range repeatTrials {
		m := 1 + rng.IntN(8)
		n := m + rng.IntN(32)
		x := testutil.RandomSignal(rng, n)
		k := testutil.RandomSignal(rng, m)

		got, err := Valid1D(x, k, 1, 0)
		require.NoError(t, err)
		if !testutil.AssertSlicesInDelta(t, testutil.NaiveConvolveValid(x, k), got, convTolerance) {
			t.Fatalf("trial %d failed (n=%d, m=%d)", trial, n, m)
		}
	}
}

func TestOutputLengthFormulas(t *testing.T) {
	x := make([]float64, 11)
	k := []float64{1, 2, 3}
	for step := 1; step <= 5; step++ {
		for padding := 0; padding <= 3; padding++ {
			full := Full1D(x, k, step, padding)
			wantFull := ceilDiv(len(x)+2*padding+len(k)-1, step)
			assert.Len(t, full, wantFull, "full step=%d padding=%d", step, padding)

			valid, err := Valid1D(x, k, step, padding)
			require.NoError(t, err)
			wantValid := ceilDiv(len(x)+2*padding-len(k)+1, step)
			assert.Len(t, valid, wantValid, "valid step=%d padding=%d", step, padding)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 3, ceilDiv(7, 3))
	assert.Equal(t, 2, ceilDiv(6, 3))
	assert.Equal(t, 0, ceilDiv(0, 4))
	assert.Equal(t, -1, ceilDiv(-3, 2))
}

// TestFull1D_StridedSubsamplesDense checks that stepping only picks every
// step-th sample of the dense result and padding only appends zeros.
func TestFull1D_StridedSubsamplesDense(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	x := testutil.RandomSignal(rng, 17)
	k := testutil.RandomSignal(rng, 4)
	dense := testutil.NaiveConvolveFull(x, k)

	const padding = 2
	for step := 1; step <= 4; step++ {
		got := Full1D(x, k, step, padding)
		for i, v := range got {
			var want float64
			if idx := i * step; idx < len(dense) {
				want = dense[idx]
			}
			assert.InDelta(t, want, v, convTolerance, "step=%d index=%d", step, i)
		}
	}
}

func TestValid1D_StridedPaddedWindows(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	x := testutil.RandomSignal(rng, 13)
	k := testutil.RandomSignal(rng, 3)

	const (
		step    = 3
		padding = 2
	)
	dense := testutil.NaiveConvolveValid(Pad(x, padding), k)
	got, err := Valid1D(x, k, step, padding)
	require.NoError(t, err)

	for i, v := range got {
		assert.InDelta(t, dense[i*step], v, convTolerance, "index %d", i)
	}
}

func TestValid1D_KernelTooLarge(t *testing.T) {
	_, err := Valid1D([]float64{1, 2}, []float64{1, 2, 3, 4}, 1, 0)
	require.ErrorIs(t, err, ErrKernelTooLarge)

	// padding can make room for the kernel
	out, err := Valid1D([]float64{1, 2}, []float64{1, 2, 3, 4}, 1, 1)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSame1D(t *testing.T) {
	tests := []struct {
		name     string
		signal   []float64
		kernel   []float64
		expected []float64
	}{
		{"odd kernel", []float64{1, 2, 3}, []float64{0, 1, 0.5}, []float64{1, 2.5, 4}},
		{"even kernel", []float64{1, 2, 3, 4}, []float64{1, 1}, []float64{1, 3, 5, 7}},
		{"scalar signal", []float64{2}, []float64{0.5, 1, 0.25}, []float64{1, 2, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertSlicesInDelta(t, tt.expected, Same1D(tt.signal, tt.kernel), convTolerance)
		})
	}
}

func TestCentered1D(t *testing.T) {
	tests := []struct {
		name     string
		signal   []float64
		kernel   []float64
		expected []float64
	}{
		{"short kernel", []float64{1, 2, 3}, []float64{0, 1, 0.5}, []float64{1, 2.5, 4}},
		{"kernel longer than signal", []float64{1, 0, 1}, []float64{0.25, 0.5, 1, 0.5, 0.25}, []float64{1.25, 1, 1.25}},
		{"single tap", []float64{4, -1}, []float64{2}, []float64{8, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Centered1D(tt.signal, tt.kernel)
			require.Len(t, got, len(tt.signal))
			testutil.AssertSlicesInDelta(t, tt.expected, got, convTolerance)
		})
	}
}

func TestFull1D_Float32(t *testing.T) {
	got := Full1D([]float32{1, 2, 3}, []float32{0, 1, 0.5}, 1, 0)
	want := []float32{0, 1, 2.5, 4, 1.5}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-6)
	}
}

func TestReverseAndPad(t *testing.T) {
	assert.Equal(t, []float64{3, 2, 1}, Reverse([]float64{1, 2, 3}))
	assert.Equal(t, []float64{0, 0, 1, 2, 0, 0}, Pad([]float64{1, 2}, 2))
}
