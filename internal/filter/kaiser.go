// Package filter designs the Kaiser-windowed filters and kernels and
// evaluates their frequency responses.
package filter

import (
	"math"

	"github.com/tphakala/go-sigkernel/internal/mathutil"
)

// KaiserAt evaluates the Kaiser window of half-width halfWidth at offset x
// from its center:
//
//	w(x) = I₀(β √(1 - (x/halfWidth)²)) / I₀(β)
//
// It is zero for |x| > halfWidth.
func KaiserAt(x, halfWidth, beta float64) float64 {
	if halfWidth <= 0 {
		if x == 0 {
			return 1
		}
		return 0
	}
	r := x / halfWidth
	if r < -1 || r > 1 {
		return 0
	}
	return mathutil.BesselI0(beta*math.Sqrt(1-r*r)) / mathutil.BesselI0(beta)
}

// KaiserWindow returns a symmetric Kaiser window of the given length, peaking
// at 1 in the center. Non-positive lengths yield an empty window.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	center := float64(length-1) / 2
	for n := range window {
		window[n] = KaiserAt(float64(n)-center, center, beta)
	}
	return window
}
