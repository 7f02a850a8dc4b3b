// Package simdops picks the tphakala/simd routine matching a generic float
// type, so the convolution engine is written once for float32 and float64.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the element type the engine is generic over.
type Float interface {
	float32 | float64
}

// Ops holds the vector routines for one element type.
type Ops[F Float] struct {
	// Dot returns Σ a[i]·b[i]. a and b must have equal length.
	Dot func(a, b []F) F

	// Correlate writes dst[i] = Σ_k signal[i+k]·kernel[k] for the
	// len(signal)-len(kernel)+1 positions where kernel fits. The kernel is
	// not reversed.
	Correlate func(dst, signal, kernel []F)
}

var (
	single = &Ops[float32]{Dot: f32.DotProductUnsafe, Correlate: f32.ConvolveValid}
	double = &Ops[float64]{Dot: f64.DotProductUnsafe, Correlate: f64.ConvolveValid}
)

// For returns the routines for F. Resolve it once per call site rather than
// inside loops.
func For[F Float]() *Ops[F] {
	var table any
	var zero F
	switch any(zero).(type) {
	case float32:
		table = single
	case float64:
		table = double
	}
	return table.(*Ops[F])
}
