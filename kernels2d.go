package sigkernel

import "math"

// Point is a 2D position given as (row, column).
type Point [2]float64

// Kernel2D evaluates a 2D interpolation kernel centred on offset at every
// point. width scales both axes.
type Kernel2D func(points []Point, offset Point, width float64) []float64

// separable builds a 2D kernel as the product of one profile per axis.
// Gated kernels (sinc, Keys, Lanczos) zero the product whenever either axis
// is outside its range, so the joint piecewise forms reduce to this product.
func separable(p profile) Kernel2D {
	return func(points []Point, offset Point, width float64) []float64 {
		out := make([]float64, len(points))
		for i, pt := range points {
			wr := p(pt[0]-offset[0], width)
			if wr == 0 {
				continue
			}
			out[i] = wr * p(pt[1]-offset[1], width)
		}
		return out
	}
}

// SampleHold2D is 1 on [0, width) along both axes after the offset shift.
func SampleHold2D(points []Point, offset Point, width float64) []float64 {
	return separable(sampleHoldProfile)(points, offset, width)
}

// NearestNeighbor2D is 1 on the centred width×width square.
func NearestNeighbor2D(points []Point, offset Point, width float64) []float64 {
	return separable(nearestProfile)(points, offset, width)
}

// Linear2D is the bilinear kernel (1-|u|)(1-|v|).
func Linear2D(points []Point, offset Point, width float64) []float64 {
	return separable(linearProfile)(points, offset, width)
}

// Sinc2D is sinc(u)·sinc(v) without windowing.
func Sinc2D(points []Point, offset Point, width float64) []float64 {
	return WindowedSinc2D(math.Inf(1))(points, offset, width)
}

// WindowedSinc2D returns sinc(u)·sinc(v) gated to [-alpha, alpha) on both axes.
func WindowedSinc2D(alpha float64) Kernel2D {
	return separable(windowedSincProfile(alpha))
}

// Keys2D is the Keys bicubic kernel with alpha = -0.5 on both axes.
func Keys2D(points []Point, offset Point, width float64) []float64 {
	return KeysAlpha2D(defaultKeysAlpha)(points, offset, width)
}

// KeysAlpha2D returns the 2D Keys kernel. Each axis picks the inner cubic on
// [0, 1) or the outer cubic on [1, 2), giving four quadrant cases.
func KeysAlpha2D(alpha float64) Kernel2D {
	return separable(keysProfile(alpha))
}

// Lanczos2D returns the separable Lanczos kernel.
func Lanczos2D(a float64) Kernel2D {
	return separable(lanczosProfile(a))
}

// KaiserSinc2D returns the separable Kaiser-windowed sinc kernel.
func KaiserSinc2D(alpha, beta float64) Kernel2D {
	return separable(kaiserSincProfile(alpha, beta))
}
