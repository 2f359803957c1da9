package translation

import (
	"math"
)

// coefficientA returns the first Gumerov-Duraiswami recursion coefficient
// family for the scalar Helmholtz equation:
//
//	aₙᵐ = √( (n+1+|m|)(n+1-|m|) / ((2n+1)(2n+3)) )
//
// aₙᵐ couples degrees n-1 and n+1 at fixed order in the interior fill.
// Outside the natural domain (n < |m|, including negative n) the
// coefficient is defined as 0; the interior fill relies on this to drop
// the nonexistent lower-degree term when n = |m|.
func coefficientA(n, m int) float64 {
	if m < 0 {
		m = -m
	}
	if n < m {
		return 0
	}

	nf, mf := float64(n), float64(m)
	return math.Sqrt((nf + 1 + mf) * (nf + 1 - mf) / ((2*nf + 1) * (2*nf + 3)))
}

// coefficientB returns the second Gumerov-Duraiswami recursion coefficient
// family:
//
//	bₙᵐ = sign(m') · √( (n-m-1)(n-m) / ((2n-1)(2n+1)) )
//
// with the sign flipped for negative orders. bₙᵐ couples degree and order
// simultaneously in the sectorial growth pass. Outside |m| ≤ n the
// coefficient is 0.
func coefficientB(n, m int) float64 {
	if n < 0 || m > n || m < -n {
		return 0
	}

	nf, mf := float64(n), float64(m)
	v := math.Sqrt((nf - mf - 1) * (nf - mf) / ((2*nf - 1) * (2*nf + 1)))
	if m < 0 {
		return -v
	}
	return v
}
