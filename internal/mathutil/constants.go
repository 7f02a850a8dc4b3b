package mathutil

// Power series for I₀.
const (
	besselMaxTerms   = 500
	besselRelEpsilon = 1e-17
)

// Kaiser & Schafer empirical β formula.
const (
	kaiserAttHigh          = 50.0
	kaiserAttMedium        = 21.0
	kaiserBetaHighCoeff    = 0.1102
	kaiserBetaHighOffset   = 8.7
	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)

// Kaiser length estimate: N ≈ (att - 8) / (2.285 Δω).
const (
	kaiserLengthOffset     = 8.0
	kaiserLengthMultiplier = 2.285
	minTransitionBW        = 1e-4

	MinFilterLength = 3
	MaxFilterLength = 8191
)
