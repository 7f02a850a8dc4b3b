package sigkernel

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sigkernel/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

const repeatTrials = 10

func TestConvolve1D_ConcreteExample(t *testing.T) {
	out, err := Convolve1D([]float64{1, 2, 3}, []float64{0, 1, 0.5}, nil)
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, []float64{0, 1, 2.5, 4, 1.5}, out, testutil.DefaultTolerance)
}

func TestConvolve_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(101, 102))
	full := &Config{Step: 1, Mode: ModeFull}
	valid := &Config{Step: 1, Mode: ModeValid}

	for trial := range repeatTrials {
		m := 1 + rng.IntN(10)
		n := m + rng.IntN(50)
		x := testutil.RandomSignal(rng, n)
		k := testutil.RandomSignal(rng, m)

		got, err := Convolve(Vector(x), Vector(k), full)
		require.NoError(t, err)
		assert.Equal(t, 1, got.NDim())
		if !testutil.AssertSlicesInDelta(t, testutil.NaiveConvolveFull(x, k), got.Data, testutil.DefaultTolerance) {
			t.Fatalf("full trial %d failed (n=%d, m=%d)", trial, n, m)
		}

		got, err = Convolve(Vector(x), Vector(k), valid)
		require.NoError(t, err)
		if !testutil.AssertSlicesInDelta(t, testutil.NaiveConvolveValid(x, k), got.Data, testutil.DefaultTolerance) {
			t.Fatalf("valid trial %d failed (n=%d, m=%d)", trial, n, m)
		}
	}
}

func TestOutputLength_MatchesConvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(103, 104))
	x := testutil.RandomSignal(rng, 23)
	k := testutil.RandomSignal(rng, 5)

	for _, mode := range []Mode{ModeFull, ModeValid} {
		for step := 1; step <= 6; step++ {
			for padding := 0; padding <= 4; padding++ {
				cfg := &Config{Step: step, Padding: padding, Mode: mode}
				want, err := OutputLength(len(x), len(k), cfg)
				require.NoError(t, err)

				out, err := Convolve1D(x, k, cfg)
				require.NoError(t, err)
				assert.Len(t, out, want, "mode=%s step=%d padding=%d", mode, step, padding)
			}
		}
	}
}

func TestOutputLength_Formula(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		cfg  *Config
		want int
	}{
		{"default", 10, 3, nil, 12},
		{"full strided", 10, 3, &Config{Step: 3, Mode: ModeFull}, 4},
		{"full padded", 10, 3, &Config{Step: 2, Padding: 2, Mode: ModeFull}, 8},
		{"valid", 10, 3, &Config{Step: 1, Mode: ModeValid}, 8},
		{"valid strided padded", 10, 3, &Config{Step: 4, Padding: 1, Mode: ModeValid}, 3},
		{"valid too large", 2, 5, &Config{Step: 1, Mode: ModeValid}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputLength(tt.n, tt.m, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvolve_DimensionMismatch(t *testing.T) {
	shapes := [][]int{{3}, {2, 2}, {1, 4}, {5}}
	for _, a := range shapes {
		for _, b := range shapes {
			if len(a) == len(b) {
				continue
			}
			signal, err := NewArray(a, make([]float64, prod(a)))
			require.NoError(t, err)
			kernel, err := NewArray(b, make([]float64, prod(b)))
			require.NoError(t, err)

			_, err = Convolve(signal, kernel, nil)
			assert.ErrorIs(t, err, ErrDimensionMismatch, "signal %v kernel %v", a, b)
		}
	}
}

func prod(shape []int) int {
	p := 1
	for _, d := range shape {
		p *= d
	}
	return p
}

func TestConvolve_UnsupportedDimension(t *testing.T) {
	cube, err := NewArray([]int{2, 2, 2}, make([]float64, 8))
	require.NoError(t, err)

	_, err = Convolve(cube, cube, nil)
	assert.ErrorIs(t, err, ErrUnsupportedDimension)
}

func TestConvolve_Errors(t *testing.T) {
	x := Vector([]float64{1, 2, 3})

	_, err := Convolve(x, Vector([]float64{1}), &Config{Step: 1, Mode: "same"})
	assert.ErrorIs(t, err, ErrUnsupportedMode)

	_, err = Convolve(x, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Convolve(x, Vector(nil), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Convolve(x, Vector([]float64{1, 2, 3, 4}), &Config{Step: 1, Mode: ModeValid})
	assert.ErrorIs(t, err, ErrKernelTooLarge)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"default", *DefaultConfig(), nil},
		{"valid strided", Config{Step: 3, Padding: 2, Mode: ModeValid}, nil},
		{"zero step", Config{Step: 0, Mode: ModeFull}, ErrInvalidStep},
		{"negative padding", Config{Step: 1, Padding: -1, Mode: ModeFull}, ErrInvalidPadding},
		{"empty mode", Config{Step: 1}, ErrUnsupportedMode},
		{"unknown mode", Config{Step: 1, Mode: "circular"}, ErrUnsupportedMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("full")
	require.NoError(t, err)
	assert.Equal(t, ModeFull, m)

	m, err = ParseMode(" Valid ")
	require.NoError(t, err)
	assert.Equal(t, ModeValid, m)

	_, err = ParseMode("same")
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestConvolve2D_MatchesFFTReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(105, 106))
	for trial := range repeatTrials {
		image := testutil.RandomMatrix(rng, 3+rng.IntN(6), 3+rng.IntN(6))
		kernel := testutil.RandomMatrix(rng, 1+rng.IntN(3), 1+rng.IntN(3))

		got, err := Convolve2D(image, kernel, nil)
		require.NoError(t, err)
		if !testutil.AssertMatrixInDelta(t, testutil.FFTConvolveFull2D(image, kernel), got, testutil.FFTTolerance) {
			t.Fatalf("trial %d failed", trial)
		}
	}
}

func TestConvolve_2DArray(t *testing.T) {
	image := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	kernel := mat.NewDense(2, 2, []float64{
		1, 0,
		0, -1,
	})

	got, err := Convolve(FromDense(image), FromDense(kernel), &Config{Step: 1, Mode: ModeValid})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got.Shape)
	// flipped kernel is [[-1 0] [0 1]], so each output is window[1][1] - window[0][0]
	assert.Equal(t, []float64{4, 4, 4, 4}, got.Data)

	_, err = Convolve2D(image, mat.NewDense(4, 1, nil), &Config{Step: 1, Mode: ModeValid})
	assert.ErrorIs(t, err, ErrKernelTooLarge)
}

func TestConvolve2D_Shapes(t *testing.T) {
	image := mat.NewDense(7, 5, nil)
	kernel := mat.NewDense(3, 2, nil)

	tests := []struct {
		cfg        *Config
		rows, cols int
	}{
		{&Config{Step: 1, Mode: ModeFull}, 9, 6},
		{&Config{Step: 2, Padding: 1, Mode: ModeFull}, 6, 4},
		{&Config{Step: 1, Mode: ModeValid}, 5, 4},
		{&Config{Step: 2, Padding: 1, Mode: ModeValid}, 4, 3},
	}

	for _, tt := range tests {
		got, err := Convolve2D(image, kernel, tt.cfg)
		require.NoError(t, err)
		r, c := got.Dims()
		assert.Equal(t, []int{tt.rows, tt.cols}, []int{r, c}, "%+v", *tt.cfg)
	}
}

func TestConvolve1DFloat32(t *testing.T) {
	out, err := Convolve1DFloat32([]float32{1, 2, 3}, []float32{0, 1, 0.5}, nil)
	require.NoError(t, err)
	want := []float32{0, 1, 2.5, 4, 1.5}
	require.Len(t, out, len(want))
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(out[i]), 1e-6)
	}
}

func TestNewArray(t *testing.T) {
	a, err := NewArray([]int{2, 3}, make([]float64, 6))
	require.NoError(t, err)
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 6, a.Size())

	_, err = NewArray([]int{2, 3}, make([]float64, 5))
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewArray([]int{-1}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Vector([]float64{1}).Dense()
	assert.ErrorIs(t, err, ErrUnsupportedDimension)
}
