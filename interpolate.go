package sigkernel

import (
	"fmt"
	"math"

	"github.com/tphakala/go-sigkernel/internal/engine"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// measurementWidth checks the measurements and returns their spacing.
func measurementWidth(xMeasure, yMeasure []float64) (float64, error) {
	if len(xMeasure) != len(yMeasure) {
		return 0, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xMeasure), len(yMeasure))
	}
	if len(xMeasure) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(xMeasure))
	}

	width := xMeasure[1] - xMeasure[0]
	if width == 0 {
		return 0, fmt.Errorf("%w: first two samples share x = %g", ErrNonUniformSpacing, xMeasure[0])
	}
	tol := spacingTolerance * math.Max(math.Abs(width), 1)
	for i := 2; i < len(xMeasure); i++ {
		if d := xMeasure[i] - xMeasure[i-1]; math.Abs(d-width) > tol {
			return 0, fmt.Errorf("%w: spacing %g at index %d, expected %g", ErrNonUniformSpacing, d, i, width)
		}
	}
	return width, nil
}

// ConvolveInterpolate resamples uniformly spaced measurements onto
// xInterpolate. Each measurement contributes its value convolved ("same"
// length) with the kernel centred on its x position; contributions are
// summed. The kernel width is the measurement spacing.
func ConvolveInterpolate(xMeasure, yMeasure, xInterpolate []float64, kernel Kernel) ([]float64, error) {
	y, _, err := convolveInterpolate(xMeasure, yMeasure, xInterpolate, kernel, false)
	return y, err
}

// ConvolveInterpolateKernels is like ConvolveInterpolate but also returns
// the contribution of every measurement, one row per sample.
func ConvolveInterpolateKernels(xMeasure, yMeasure, xInterpolate []float64, kernel Kernel) ([]float64, [][]float64, error) {
	return convolveInterpolate(xMeasure, yMeasure, xInterpolate, kernel, true)
}

func convolveInterpolate(xMeasure, yMeasure, xInterpolate []float64, kernel Kernel, keep bool) ([]float64, [][]float64, error) {
	width, err := measurementWidth(xMeasure, yMeasure)
	if err != nil {
		return nil, nil, err
	}

	out := make([]float64, len(xInterpolate))
	var contributions [][]float64
	if keep {
		contributions = make([][]float64, 0, len(xMeasure))
	}
	if len(xInterpolate) == 0 {
		return out, contributions, nil
	}

	for i, xs := range xMeasure {
		c := engine.Same1D([]float64{yMeasure[i]}, kernel(xInterpolate, xs, width))
		for j, v := range c {
			out[j] += v
		}
		if keep {
			contributions = append(contributions, c)
		}
	}
	return out, contributions, nil
}

// ProductInterpolate resamples uniformly spaced measurements onto
// xInterpolate as y · W, where row i of W is the kernel centred on
// xMeasure[i]. It is equivalent to ConvolveInterpolate.
func ProductInterpolate(xMeasure, yMeasure, xInterpolate []float64, kernel Kernel) ([]float64, error) {
	width, err := measurementWidth(xMeasure, yMeasure)
	if err != nil {
		return nil, err
	}
	return productInterpolate(xMeasure, yMeasure, xInterpolate, kernel, width), nil
}

func productInterpolate(xMeasure, yMeasure, xInterpolate []float64, kernel Kernel, width float64) []float64 {
	if len(xInterpolate) == 0 {
		return []float64{}
	}
	weights := weightMatrix(xMeasure, xInterpolate, kernel, width)
	var out mat.VecDense
	out.MulVec(weights.T(), mat.NewVecDense(len(yMeasure), yMeasure))
	return out.RawVector().Data
}

// weightMatrix returns the len(xMeasure)×len(xInterpolate) matrix whose row
// i is the kernel centred on xMeasure[i].
func weightMatrix(xMeasure, xInterpolate []float64, kernel Kernel, width float64) *mat.Dense {
	w := mat.NewDense(len(xMeasure), len(xInterpolate), nil)
	for i, xs := range xMeasure {
		w.SetRow(i, kernel(xInterpolate, xs, width))
	}
	return w
}

// pixelGrid returns 0, 1, ..., n-1.
func pixelGrid(n int) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = float64(i)
	}
	return g
}

// upsampledGrid returns ratio*n points k/ratio covering [0, n).
func upsampledGrid(n, ratio int) []float64 {
	g := make([]float64, n*ratio)
	for k := range g {
		g[k] = float64(k) / float64(ratio)
	}
	return g
}

func checkImage(image mat.Matrix, ratio int) (int, int, error) {
	if ratio < 1 {
		return 0, 0, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidRatio, ratio)
	}
	if image == nil {
		return 0, 0, fmt.Errorf("%w: nil image", ErrEmptyInput)
	}
	h, w := image.Dims()
	if h == 0 || w == 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d image", ErrEmptyInput, h, w)
	}
	return h, w, nil
}

// ImageInterpolate1D upsamples an image by an integer ratio with separable
// product interpolation: every row, then every column. Pixel i sits at
// position i and the kernel width is one pixel. The result is
// (ratio·H)×(ratio·W).
func ImageInterpolate1D(image mat.Matrix, kernel Kernel, ratio int) (*mat.Dense, error) {
	h, w, err := checkImage(image, ratio)
	if err != nil {
		return nil, err
	}

	// Every row shares one weight matrix, as does every column, so the two
	// passes are Wrᵀ · image · Wc.
	wc := weightMatrix(pixelGrid(w), upsampledGrid(w, ratio), kernel, 1)
	wr := weightMatrix(pixelGrid(h), upsampledGrid(h, ratio), kernel, 1)

	var rows mat.Dense
	rows.Mul(image, wc)
	var out mat.Dense
	out.Mul(wr.T(), &rows)
	return &out, nil
}

// ImageInterpolate2D upsamples an image by an integer ratio with a full 2D
// kernel: every source pixel adds its value times the kernel centred on it,
// evaluated over the whole target grid. eps in [0, 1) shrinks the kernel
// width to 1-eps, which keeps neighbouring windowed kernels from
// overlapping. With a separable kernel and eps = 0 the result equals
// ImageInterpolate1D.
func ImageInterpolate2D(image mat.Matrix, kernel Kernel2D, ratio int, eps float64) (*mat.Dense, error) {
	h, w, err := checkImage(image, ratio)
	if err != nil {
		return nil, err
	}
	if eps < 0 || eps >= 1 {
		return nil, fmt.Errorf("%w: eps %g gives width %g", ErrInvalidWidth, eps, 1-eps)
	}

	outH, outW := h*ratio, w*ratio
	targets := make([]Point, 0, outH*outW)
	for _, r := range upsampledGrid(h, ratio) {
		for _, c := range upsampledGrid(w, ratio) {
			targets = append(targets, Point{r, c})
		}
	}

	acc := make([]float64, outH*outW)
	width := 1 - eps
	for r := range h {
		for c := range w {
			v := image.At(r, c)
			if v == 0 {
				continue
			}
			weights := kernel(targets, Point{float64(r), float64(c)}, width)
			floats.AddScaled(acc, v, weights)
		}
	}
	return mat.NewDense(outH, outW, acc), nil
}
