package translation

// Exports for white-box testing of the recurrence internals.

var (
	CoaxialCoefficients = coaxialCoefficients
	CoefficientA        = coefficientA
	CoefficientB        = coefficientB
	BasisPhase          = basisPhase
)
