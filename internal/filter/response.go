package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	defaultResponsePoints = 512
	minMagnitude          = 1e-10
)

// Response is a sampled frequency response.
type Response struct {
	// Frequencies as a fraction of the sample rate, in [0, 0.5).
	Frequencies []float64
	Magnitude   []float64
	// Phase in radians.
	Phase []float64
}

// FrequencyResponse evaluates H(e^jω) = Σ h[n] e^(-jωn) at points
// frequencies k/(2·points), k < points. Non-positive points selects 512.
//
// The taps are folded modulo the transform size before a real FFT, so any
// number of taps is handled exactly.
func FrequencyResponse(taps []float64, points int) Response {
	if points <= 0 {
		points = defaultResponsePoints
	}
	n := 2 * points

	folded := make([]float64, n)
	for i, h := range taps {
		folded[i%n] += h
	}
	coeffs := fourier.NewFFT(n).Coefficients(nil, folded)

	resp := Response{
		Frequencies: make([]float64, points),
		Magnitude:   make([]float64, points),
		Phase:       make([]float64, points),
	}
	for k := range points {
		resp.Frequencies[k] = float64(k) / float64(n)
		resp.Magnitude[k] = cmplx.Abs(coeffs[k])
		resp.Phase[k] = cmplx.Phase(coeffs[k])
	}
	return resp
}

// MagnitudeDB converts a linear magnitude to dB, flooring at -200 dB.
func MagnitudeDB(magnitude float64) float64 {
	return 20 * math.Log10(max(magnitude, minMagnitude))
}
