// Package mathutil holds the special functions behind the Kaiser-windowed
// kernels and filters.
package mathutil

import "math"

// BesselI0 computes the modified Bessel function of the first kind, order
// zero, by summing its power series
//
//	I₀(x) = Σ ((x/2)^k / k!)²
//
// until the next term no longer changes the sum.
func BesselI0(x float64) float64 {
	q := x * x / 4
	sum, term := 1.0, 1.0
	for k := 1; k < besselMaxTerms; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < sum*besselRelEpsilon {
			break
		}
	}
	return sum
}

// KaiserBeta returns the Kaiser window β for a stopband attenuation in dB.
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff * (attenuation - kaiserBetaHighOffset)
	case attenuation > kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0
	}
}

// EstimateFilterLength estimates the odd number of taps a Kaiser-windowed
// low-pass needs for the given attenuation (dB) and transition bandwidth
// (fraction of the sample rate). The result is clamped to
// [MinFilterLength, MaxFilterLength].
func EstimateFilterLength(attenuation, transitionBW float64) int {
	transitionBW = max(transitionBW, minTransitionBW)
	dw := 2 * math.Pi * transitionBW
	n := int(math.Ceil((attenuation-kaiserLengthOffset)/(kaiserLengthMultiplier*dw))) + 1
	n = min(max(n, MinFilterLength), MaxFilterLength)
	if n%2 == 0 {
		n++
		if n > MaxFilterLength {
			n -= 2
		}
	}
	return n
}
