package sigkernel

import (
	"fmt"
	"math"

	"github.com/tphakala/go-sigkernel/internal/engine"
	"gonum.org/v1/gonum/floats"
)

// KernelSamples evaluates kernel at size evenly spaced points on [-1, 1]
// (a single point sits at 0).
func KernelSamples(kernel Kernel, size int, width float64) ([]float64, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKernelSize, size)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	x := []float64{0}
	if size > 1 {
		x = floats.Span(make([]float64, size), kernelGridStart, kernelGridEnd)
	}
	return kernel(x, 0, width), nil
}

// DiracInterpolate upsamples uniformly spaced measurements by an integer
// ratio. The measurements are placed every ratio-th sample of a zero signal
// of length ratio·len(yMeasure) (a Dirac comb), which is then convolved
// with kernelSize samples of the kernel taken on
// [-1, 1] at kernelWidth. The result keeps the comb's length with the
// kernel's centre tap on each comb sample.
//
// ratio must be a whole number of at least 1 and kernelSize must be odd so
// the kernel has a centre tap.
func DiracInterpolate(xMeasure, yMeasure []float64, ratio float64, kernelSize int, kernelWidth float64, kernel Kernel) ([]float64, error) {
	if ratio < 1 || math.IsInf(ratio, 0) || ratio != math.Trunc(ratio) {
		return nil, fmt.Errorf("%w: %g (must be an integer of at least 1)", ErrInvalidRatio, ratio)
	}
	if len(xMeasure) != len(yMeasure) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xMeasure), len(yMeasure))
	}
	if len(yMeasure) == 0 {
		return nil, fmt.Errorf("%w: no measurements", ErrEmptyInput)
	}
	if ratio > float64(math.MaxInt/len(yMeasure)) {
		return nil, fmt.Errorf("%w: %g is too large for %d samples", ErrInvalidRatio, ratio, len(yMeasure))
	}
	if kernelSize%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenKernelSize, kernelSize)
	}

	taps, err := KernelSamples(kernel, kernelSize, kernelWidth)
	if err != nil {
		return nil, err
	}

	step := int(ratio)
	comb := make([]float64, step*len(yMeasure))
	for i, y := range yMeasure {
		comb[i*step] = y
	}
	return engine.Centered1D(comb, taps), nil
}
