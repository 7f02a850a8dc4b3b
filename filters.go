package sigkernel

import (
	"fmt"

	"github.com/tphakala/go-sigkernel/internal/engine"
	"github.com/tphakala/go-sigkernel/internal/filter"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// BoxBlurKernel returns a size×size kernel of 1/size². Convolving with it
// takes the local mean.
func BoxBlurKernel(size int) (*mat.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKernelSize, size)
	}
	data := make([]float64, size*size)
	v := 1 / float64(size*size)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(size, size, data), nil
}

// GaussianBlurKernel returns a size×size kernel weighted by a 2D normal PDF
// with covariance sigma·I. Each tap at Manhattan distance d from the centre
// gets the density at (d, d). The taps sum to 1. size must be odd.
func GaussianBlurKernel(size int, sigma float64) (*mat.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKernelSize, size)
	}
	if size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenKernelSize, size)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %g", ErrInvalidWidth, sigma)
	}

	cov := mat.NewSymDense(2, []float64{sigma, 0, 0, sigma})
	normal, ok := distmv.NewNormal([]float64{0, 0}, cov, nil)
	if !ok {
		return nil, fmt.Errorf("%w: sigma %g is not a valid covariance", ErrInvalidWidth, sigma)
	}

	center := size / 2
	k := mat.NewDense(size, size, nil)
	var sum float64
	for r := range size {
		for c := range size {
			d := float64(absInt(r-center) + absInt(c-center))
			p := normal.Prob([]float64{d, d})
			k.Set(r, c, p)
			sum += p
		}
	}
	k.Scale(1/sum, k)
	return k, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LowPassKernel designs a Kaiser-windowed sinc low-pass FIR with numTaps
// taps (odd), cutoff as a fraction of the sample rate in (0, 0.5) and the
// given stopband attenuation in dB. The taps sum to 1.
func LowPassKernel(numTaps int, cutoff, attenuation float64) ([]float64, error) {
	if numTaps%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenKernelSize, numTaps)
	}
	taps, err := filter.LowPass(filter.LowPassParams{
		Taps:        numTaps,
		Cutoff:      cutoff,
		Attenuation: attenuation,
		Gain:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return taps, nil
}

// LowPassKernelFor designs a low-pass FIR like LowPassKernel, choosing the
// odd number of taps that reaches attenuation within transitionBW (both as
// fractions of the sample rate).
func LowPassKernelFor(cutoff, transitionBW, attenuation float64) ([]float64, error) {
	taps, err := filter.LowPassAuto(cutoff, transitionBW, attenuation, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return taps, nil
}

// StridedCorrelate slides the kernel, unflipped, over the zero-padded image
// with the given stride and returns the window sums. The output is
// floor((H+2p-kh)/stride)+1 by floor((W+2p-kw)/stride)+1.
func StridedCorrelate(image, kernel mat.Matrix, stride, padding int) (*mat.Dense, error) {
	if stride < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, stride)
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPadding, padding)
	}
	img, err := toGrid(image)
	if err != nil {
		return nil, err
	}
	k, err := toGrid(kernel)
	if err != nil {
		return nil, err
	}

	out, err := engine.StridedCorrelate2D(img, k, stride, padding)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d kernel, %dx%d image, padding %d",
			err, k.Rows, k.Cols, img.Rows, img.Cols, padding)
	}
	return fromGrid(out), nil
}
