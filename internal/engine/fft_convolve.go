package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// SpectralCorrelator computes the valid sliding dot product of a signal
// with a fixed kernel by overlap-save block FFTs. Each block of fftLen
// input samples yields fftLen-len(kernel)+1 outputs; the leading
// len(kernel)-1 samples of every inverse transform are circular wrap and
// are dropped.
//
// A SpectralCorrelator reuses its scratch buffers and is not safe for
// concurrent use.
type SpectralCorrelator struct {
	fft    *fourier.FFT
	fftLen int
	taps   int
	hop    int
	norm   float64

	// spectrum of the reversed, zero-extended kernel
	kernelDFT []complex128

	block    []float64
	blockDFT []complex128
	product  []complex128
	inverse  []float64
}

// spectralSize returns the smallest power of two FFT length, starting from
// minFFTLength, that holds at least fftKernelMultiple·taps samples.
func spectralSize(taps int) int {
	n := minFFTLength
	for n < fftKernelMultiple*taps {
		n <<= 1
	}
	return n
}

// NewSpectralCorrelator transforms kernel once for repeated use.
// It returns nil for an empty kernel.
func NewSpectralCorrelator(kernel []float64) *SpectralCorrelator {
	taps := len(kernel)
	if taps == 0 {
		return nil
	}

	n := spectralSize(taps)
	fft := fourier.NewFFT(n)

	// Circular convolution with the reversed kernel is correlation with the
	// kernel itself once the wrapped prefix is skipped.
	reversed := make([]float64, n)
	copy(reversed, Reverse(kernel))
	bins := n/realSpectrumDivisor + 1

	return &SpectralCorrelator{
		fft:        fft,
		fftLen:     n,
		taps:       taps,
		hop:        n - taps + 1,
		norm:       1 / float64(n),
		kernelDFT:  fft.Coefficients(nil, reversed),
		block:      make([]float64, n),
		blockDFT:   make([]complex128, bins),
		product:    make([]complex128, bins),
		inverse:    make([]float64, n),
	}
}

// Correlate writes dst[i] = Σ_k signal[i+k]·kernel[k] for every i where the
// kernel fits inside signal. dst must hold len(signal)-len(kernel)+1 values;
// nothing is written when the kernel is longer than the signal.
func (c *SpectralCorrelator) Correlate(dst, signal []float64) {
	outLen := len(signal) - c.taps + 1
	if outLen <= 0 || len(dst) < outLen {
		return
	}

	skip := c.taps - 1
	for start := 0; start < outLen; start += c.hop {
		clear(c.block)
		copy(c.block, signal[start:min(start+c.fftLen, len(signal))])

		c.blockDFT = c.fft.Coefficients(c.blockDFT, c.block)
		c128.Mul(c.product, c.blockDFT, c.kernelDFT)
		c.inverse = c.fft.Sequence(c.inverse, c.product)
		f64.Scale(c.inverse, c.inverse, c.norm)

		n := min(c.hop, outLen-start)
		copy(dst[start:start+n], c.inverse[skip:skip+n])
	}
}

// CorrelateValidFFT is the float64 valid correlation used by the 1D
// engine. Kernels shorter than minKernelForFFT use the direct SIMD path.
func CorrelateValidFFT(dst, signal, kernel []float64) {
	if len(kernel) < minKernelForFFT {
		f64.ConvolveValid(dst, signal, kernel)
		return
	}
	if c := NewSpectralCorrelator(kernel); c != nil {
		c.Correlate(dst, signal)
	}
}
