package sigkernel

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces the pixels of one window to a single value. It may
// reorder window.
type Aggregate func(window []float64) float64

// Window aggregates for NonlinearDownsample.
var (
	Mean   Aggregate = func(w []float64) float64 { return stat.Mean(w, nil) }
	Max    Aggregate = floats.Max
	Min    Aggregate = floats.Min
	Median Aggregate = median
)

// median returns the middle order statistic, or the mean of the two middle
// ones for even lengths.
func median(w []float64) float64 {
	slices.Sort(w)
	n := len(w)
	if n%2 == 1 {
		return w[n/2]
	}
	// exact for even n: the empirical 0.5 quantile is w[n/2-1]
	lo := stat.Quantile(0.5, stat.Empirical, w, nil)
	return (lo + w[n/2]) / 2
}

func checkWindow(image mat.Matrix, size int) (int, int, error) {
	if size < 1 {
		return 0, 0, fmt.Errorf("%w: window %d", ErrInvalidKernelSize, size)
	}
	if image == nil {
		return 0, 0, fmt.Errorf("%w: nil image", ErrEmptyInput)
	}
	h, w := image.Dims()
	if h < size || w < size {
		return 0, 0, fmt.Errorf("%w: %dx%d window, %dx%d image", ErrKernelTooLarge, size, size, h, w)
	}
	return h / size, w / size, nil
}

// Downsample shrinks an image by averaging non-overlapping size×size
// windows. Rows and columns that do not fill a window are dropped, so the
// result is floor(H/size)×floor(W/size).
func Downsample(image mat.Matrix, size int) (*mat.Dense, error) {
	if _, _, err := checkWindow(image, size); err != nil {
		return nil, err
	}
	box, err := BoxBlurKernel(size)
	if err != nil {
		return nil, err
	}
	return StridedCorrelate(image, box, size, 0)
}

// NonlinearDownsample shrinks an image by reducing every non-overlapping
// size×size window with agg. Partial windows are dropped as in Downsample.
func NonlinearDownsample(image mat.Matrix, size int, agg Aggregate) (*mat.Dense, error) {
	outH, outW, err := checkWindow(image, size)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		agg = Mean
	}

	out := mat.NewDense(outH, outW, nil)
	window := make([]float64, size*size)
	for i := range outH {
		for j := range outW {
			window = window[:0]
			for r := i * size; r < (i+1)*size; r++ {
				for c := j * size; c < (j+1)*size; c++ {
					window = append(window, image.At(r, c))
				}
			}
			out.Set(i, j, agg(window))
		}
	}
	return out, nil
}
