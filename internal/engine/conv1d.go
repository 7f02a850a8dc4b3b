// Package engine implements the direct convolution kernels behind the public
// sigkernel API. Inputs are assumed validated by the caller; geometry that
// cannot produce output is reported with ErrKernelTooLarge.
package engine

import (
	"errors"

	"github.com/tphakala/go-sigkernel/internal/simdops"
)

// ErrKernelTooLarge indicates a valid-mode geometry with no output positions.
var ErrKernelTooLarge = errors.New("kernel too large for valid convolution")

// ceilDiv returns ceil(a/b) for b > 0, including negative a.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return -((-a) / b)
	}
	return (a + b - 1) / b
}

// FullLength returns ceil((n + 2*padding + m - 1) / step).
func FullLength(n, m, step, padding int) int {
	return ceilDiv(n+2*padding+m-1, step)
}

// ValidLength returns ceil((n + 2*padding - m + 1) / step).
// A result <= 0 means the kernel does not fit.
func ValidLength(n, m, step, padding int) int {
	return ceilDiv(n+2*padding-m+1, step)
}

// Reverse returns a reversed copy of s.
func Reverse[F simdops.Float](s []F) []F {
	out := make([]F, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Pad returns s with padding zeros on both ends.
func Pad[F simdops.Float](s []F, padding int) []F {
	out := make([]F, len(s)+2*padding)
	copy(out[padding:], s)
	return out
}

// Full1D computes the strided full convolution
//
//	out[n] = Σ_k signal[n*step - k] * kernel[k]
//
// with terms outside [0, len(signal)) treated as zero. Padding only extends
// the number of output positions.
func Full1D[F simdops.Float](signal, kernel []F, step, padding int) []F {
	n, m := len(signal), len(kernel)
	outLen := FullLength(n, m, step, padding)
	out := make([]F, outLen)
	if outLen <= 0 {
		return out
	}

	// ext[i] = signal[i-(m-1)]; windows ext[n*step : n*step+m] dotted with the
	// reversed kernel give the convolution sum without negative indices.
	extLen := max((outLen-1)*step+m, n+m-1)
	ext := make([]F, extLen)
	copy(ext[m-1:], signal)
	rev := Reverse(kernel)

	if step == 1 {
		correlateValid(out, ext[:outLen+m-1], rev)
		return out
	}

	ops := simdops.For[F]()
	for i := range out {
		start := i * step
		out[i] = ops.Dot(ext[start:start+m], rev)
	}
	return out
}

// Valid1D computes the strided valid convolution over the zero-padded signal
//
//	out[n] = Σ_j padded[n*step + j] * reverse(kernel)[j]
func Valid1D[F simdops.Float](signal, kernel []F, step, padding int) ([]F, error) {
	m := len(kernel)
	outLen := ValidLength(len(signal), m, step, padding)
	if outLen <= 0 {
		return nil, ErrKernelTooLarge
	}

	padded := Pad(signal, padding)
	rev := Reverse(kernel)
	out := make([]F, outLen)

	if step == 1 {
		correlateValid(out, padded, rev)
		return out, nil
	}

	ops := simdops.For[F]()
	for i := range out {
		start := i * step
		out[i] = ops.Dot(padded[start:start+m], rev)
	}
	return out, nil
}

// Same1D returns the centred part of the full convolution with length
// max(len(signal), len(kernel)), offset by half the shorter length less one.
func Same1D[F simdops.Float](signal, kernel []F) []F {
	full := Full1D(signal, kernel, 1, 0)
	n := max(len(signal), len(kernel))
	start := (min(len(signal), len(kernel)) - 1) / sameCenterDivisor

	out := make([]F, n)
	copy(out, full[start:start+n])
	return out
}

// Centered1D returns len(signal) samples of the full convolution, starting
// (len(kernel)-1)/2 in so an odd kernel's centre tap lines up with each
// input sample.
func Centered1D[F simdops.Float](signal, kernel []F) []F {
	full := Full1D(signal, kernel, 1, 0)
	start := (len(kernel) - 1) / sameCenterDivisor

	out := make([]F, len(signal))
	copy(out, full[start:])
	return out
}

// correlateValid dispatches the step-1 sliding dot product. float64 inputs
// with long kernels go through the FFT correlator.
func correlateValid[F simdops.Float](dst, signal, kernel []F) {
	if d, ok := any(dst).([]float64); ok {
		s, _ := any(signal).([]float64)
		k, _ := any(kernel).([]float64)
		CorrelateValidFFT(d, s, k)
		return
	}
	simdops.For[F]().Correlate(dst, signal, kernel)
}
