package testutil

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// NaiveConvolveFull is the textbook full discrete convolution,
// y[n] = Σ x[i] k[n-i], of length len(x)+len(k)-1.
func NaiveConvolveFull(x, k []float64) []float64 {
	out := make([]float64, len(x)+len(k)-1)
	for i, xv := range x {
		for j, kv := range k {
			out[i+j] += xv * kv
		}
	}
	return out
}

// NaiveConvolveValid returns the part of the full convolution where the shorter
// input fully overlaps the longer one.
func NaiveConvolveValid(x, k []float64) []float64 {
	full := NaiveConvolveFull(x, k)
	short, long := min(len(x), len(k)), max(len(x), len(k))
	return full[short-1 : long]
}

// RandomSignal returns n standard-normal samples.
func RandomSignal(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}
	return s
}

// RandomMatrix returns a rows×cols matrix of standard-normal samples.
func RandomMatrix(rng *rand.Rand, rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, RandomSignal(rng, rows*cols))
}

// FFTConvolveFull2D computes the full 2D linear convolution through a 2D FFT
// (rows then columns with gonum's complex FFT), as an independent reference
// for the direct engine.
func FFTConvolveFull2D(image, kernel mat.Matrix) *mat.Dense {
	h, w := image.Dims()
	kh, kw := kernel.Dims()
	outH, outW := h+kh-1, w+kw-1

	a := makeComplex2D(outH, outW)
	b := makeComplex2D(outH, outW)
	for y := range h {
		for x := range w {
			a[y][x] = complex(image.At(y, x), 0)
		}
	}
	for y := range kh {
		for x := range kw {
			b[y][x] = complex(kernel.At(y, x), 0)
		}
	}

	fft2InPlace(a, true)
	fft2InPlace(b, true)
	for y := range outH {
		for x := range outW {
			a[y][x] *= b[y][x]
		}
	}
	fft2InPlace(a, false)

	// gonum transforms are unnormalized
	scale := float64(outH * outW)
	out := mat.NewDense(outH, outW, nil)
	for y := range outH {
		for x := range outW {
			out.Set(y, x, real(a[y][x])/scale)
		}
	}
	return out
}

func makeComplex2D(h, w int) [][]complex128 {
	out := make([][]complex128, h)
	for i := range out {
		out[i] = make([]complex128, w)
	}
	return out
}

func fft2InPlace(a [][]complex128, forward bool) {
	h, w := len(a), len(a[0])
	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	tmp := make([]complex128, w)
	for y := range h {
		copy(tmp, a[y])
		if forward {
			rowFFT.Coefficients(tmp, tmp)
		} else {
			rowFFT.Sequence(tmp, tmp)
		}
		copy(a[y], tmp)
	}

	col := make([]complex128, h)
	for x := range w {
		for y := range h {
			col[y] = a[y][x]
		}
		if forward {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := range h {
			a[y][x] = col[y]
		}
	}
}
