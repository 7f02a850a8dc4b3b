package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-sigkernel/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const sincZeroThreshold = 1e-10

var (
	ErrInvalidTaps        = errors.New("invalid filter length")
	ErrInvalidCutoff      = errors.New("invalid cutoff frequency")
	ErrInvalidAttenuation = errors.New("invalid attenuation")
	ErrInvalidGain        = errors.New("invalid gain")
)

// LowPassParams describes a windowed-sinc low-pass filter.
type LowPassParams struct {
	// Taps is the filter length; odd lengths give a centered, linear-phase filter.
	Taps int

	// Cutoff is the cutoff frequency as a fraction of the sample rate, in (0, 0.5).
	Cutoff float64

	// Attenuation is the stopband attenuation in dB. It selects the Kaiser β.
	Attenuation float64

	// Gain is the DC gain the taps are normalized to.
	Gain float64
}

// Validate checks the parameters.
func (p *LowPassParams) Validate() error {
	if p.Taps < mathutil.MinFilterLength || p.Taps > mathutil.MaxFilterLength {
		return fmt.Errorf("%w: %d taps (must be in [%d, %d])",
			ErrInvalidTaps, p.Taps, mathutil.MinFilterLength, mathutil.MaxFilterLength)
	}
	if p.Cutoff <= 0 || p.Cutoff >= 0.5 {
		return fmt.Errorf("%w: %f (must be in (0, 0.5))", ErrInvalidCutoff, p.Cutoff)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("%w: %f dB", ErrInvalidAttenuation, p.Attenuation)
	}
	if p.Gain <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidGain, p.Gain)
	}
	return nil
}

// LowPass designs a Kaiser-windowed sinc low-pass filter whose taps sum to
// p.Gain.
func LowPass(p LowPassParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	window := KaiserWindow(p.Taps, mathutil.KaiserBeta(p.Attenuation))
	center := float64(p.Taps-1) / 2
	taps := make([]float64, p.Taps)
	for n := range taps {
		x := float64(n) - center
		// sin(2π fc x) / (π x), which tends to 2 fc at x = 0
		ideal := 2 * p.Cutoff
		if math.Abs(x) >= sincZeroThreshold {
			ideal = math.Sin(2*math.Pi*p.Cutoff*x) / (math.Pi * x)
		}
		taps[n] = ideal * window[n]
	}

	if sum := f64.Sum(taps); math.Abs(sum) > sincZeroThreshold {
		f64.Scale(taps, taps, p.Gain/sum)
	}
	return taps, nil
}

// LowPassAuto designs a low-pass filter, choosing the length from the
// attenuation and the transition bandwidth.
func LowPassAuto(cutoff, transitionBW, attenuation, gain float64) ([]float64, error) {
	return LowPass(LowPassParams{
		Taps:        mathutil.EstimateFilterLength(attenuation, transitionBW),
		Cutoff:      cutoff,
		Attenuation: attenuation,
		Gain:        gain,
	})
}
