package sigkernel

import (
	"fmt"

	"github.com/tphakala/go-sigkernel/internal/filter"
)

// Response is the frequency response of a 1D kernel.
type Response struct {
	// Frequencies as a fraction of the sample rate, in [0, 0.5).
	Frequencies []float64

	// MagnitudeDB is 20·log10|H|, floored at -200 dB.
	MagnitudeDB []float64

	// Phase in radians.
	Phase []float64
}

// FrequencyResponse evaluates the DTFT of kernel at points frequencies
// evenly spaced from 0 towards Nyquist. points <= 0 selects 512.
func FrequencyResponse(kernel []float64, points int) (*Response, error) {
	if len(kernel) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrEmptyInput)
	}
	if points <= 0 {
		points = defaultResponsePoints
	}

	raw := filter.FrequencyResponse(kernel, points)
	db := make([]float64, len(raw.Magnitude))
	for i, m := range raw.Magnitude {
		db[i] = filter.MagnitudeDB(m)
	}
	return &Response{Frequencies: raw.Frequencies, MagnitudeDB: db, Phase: raw.Phase}, nil
}
