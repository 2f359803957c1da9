package mathutil

// Spherical Bessel evaluation constants.
const (
	// Below this argument the closed forms sin(x)/x lose precision and the
	// leading series terms are exact to double precision.
	sphBesselTinyThreshold = 1e-8

	// Series divisors from the small-argument expansions
	// j₀(x) ≈ 1 - x²/6 and j₁(x) ≈ x/3.
	j0SeriesDivisor = 6.0
	j1SeriesDivisor = 3.0
)

// Miller downward-recurrence constants.
//
// The backward recurrence is started above the requested order so that the
// unwanted second solution has decayed to below double precision by the
// time the stored orders are reached. The pad and slack follow the usual
// n + √(40n) starting-order rule.
const (
	millerStartPad   = 15
	millerStartSlack = 40.0

	// Arbitrary small seed for the unscaled backward recurrence.
	millerSeed = 1e-30

	// Rescaling guard against overflow of the unscaled sequence.
	millerRescaleThreshold = 1e250
	millerRescaleFactor    = 1e-250
)
