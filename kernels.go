package sigkernel

import (
	"math"

	"github.com/tphakala/go-sigkernel/internal/filter"
)

// Kernel evaluates an interpolation kernel centred on offset at every
// position in x. width is the sample spacing the kernel is scaled to.
// Kernels never modify x and always return a new slice of len(x) weights.
type Kernel func(x []float64, offset, width float64) []float64

// profile is a kernel's weight as a function of the signed distance d from
// its centre.
type profile func(d, width float64) float64

func (p profile) kernel() Kernel {
	return func(x []float64, offset, width float64) []float64 {
		out := make([]float64, len(x))
		for i, xi := range x {
			out[i] = p(xi-offset, width)
		}
		return out
	}
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

// sinc is the normalized sinc sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func sampleHoldProfile(d, width float64) float64 {
	return indicator(d >= 0 && d < width)
}

func nearestProfile(d, width float64) float64 {
	half := width / halfDivisor
	return indicator(d >= -half && d < half)
}

func linearProfile(d, width float64) float64 {
	u := math.Abs(d / width)
	if u < 1 {
		return 1 - u
	}
	return 0
}

func windowedSincProfile(alpha float64) profile {
	return func(d, width float64) float64 {
		u := d / width
		if u < -alpha || u >= alpha {
			return 0
		}
		return sinc(u)
	}
}

// keysWeight is the Keys cubic convolution kernel at u = |x|.
func keysWeight(u, alpha float64) float64 {
	switch {
	case u < keysInnerLimit:
		return (alpha+2)*u*u*u - (alpha+3)*u*u + 1
	case u < keysOuterLimit:
		return alpha*u*u*u - 5*alpha*u*u + 8*alpha*u - 4*alpha
	default:
		return 0
	}
}

func keysProfile(alpha float64) profile {
	return func(d, width float64) float64 {
		return keysWeight(math.Abs(d/width), alpha)
	}
}

func lanczosProfile(a float64) profile {
	return func(d, width float64) float64 {
		u := d / width
		if math.Abs(u) >= a {
			return 0
		}
		return sinc(u) * sinc(u/a)
	}
}

func kaiserSincProfile(alpha, beta float64) profile {
	return func(d, width float64) float64 {
		u := d / width
		if u < -alpha || u >= alpha {
			return 0
		}
		return sinc(u) * filter.KaiserAt(u, alpha, beta)
	}
}

// SampleHold is the causal box kernel: 1 on [offset, offset+width), 0 elsewhere.
func SampleHold(x []float64, offset, width float64) []float64 {
	return profile(sampleHoldProfile).kernel()(x, offset, width)
}

// NearestNeighbor is the centred box kernel: 1 on
// [offset-width/2, offset+width/2), 0 elsewhere.
func NearestNeighbor(x []float64, offset, width float64) []float64 {
	return profile(nearestProfile).kernel()(x, offset, width)
}

// Linear is the triangle kernel 1-|u| for |u| < 1, with u = (x-offset)/width.
func Linear(x []float64, offset, width float64) []float64 {
	return profile(linearProfile).kernel()(x, offset, width)
}

// Sinc is the unwindowed normalized sinc kernel.
func Sinc(x []float64, offset, width float64) []float64 {
	return WindowedSinc(math.Inf(1))(x, offset, width)
}

// WindowedSinc returns the sinc kernel gated to u in [-alpha, alpha).
func WindowedSinc(alpha float64) Kernel {
	return windowedSincProfile(alpha).kernel()
}

// Keys is the Keys bicubic kernel with alpha = -0.5.
func Keys(x []float64, offset, width float64) []float64 {
	return KeysAlpha(defaultKeysAlpha)(x, offset, width)
}

// KeysAlpha returns the Keys bicubic kernel with the given shape parameter.
// It is non-zero for |u| < 2.
func KeysAlpha(alpha float64) Kernel {
	return keysProfile(alpha).kernel()
}

// Lanczos returns the Lanczos kernel sinc(u)·sinc(u/a) on |u| < a.
func Lanczos(a float64) Kernel {
	return lanczosProfile(a).kernel()
}

// KaiserSinc returns the sinc kernel gated to u in [-alpha, alpha) and
// tapered by a Kaiser window of half-width alpha and shape beta.
func KaiserSinc(alpha, beta float64) Kernel {
	return kaiserSincProfile(alpha, beta).kernel()
}
