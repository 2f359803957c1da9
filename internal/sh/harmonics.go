package sh

import (
	"math"
)

// Evaluate computes the real-valued spherical harmonics in N3D
// normalization for a direction, up to the given maximum degree.
//
// The result is ACN-ordered: element Index(n, m) holds Yₙᵐ evaluated at
// the direction. Angles follow the ambisonics convention: azimuth is
// measured counter-clockwise from the front in radians, elevation upward
// from the horizontal plane. The Condon-Shortley phase is not applied.
//
// N3D (full 3-D) normalization makes the harmonics orthonormal up to the
// common 1/(4π) factor, so Y₀⁰ = 1 and, for example, Y₁⁰ = √3·sin(el).
//
// Evaluating a direction yields the plane-wave encoding coefficients used
// to place a source in an ambisonic sound field.
func Evaluate(maxDegree int, azimuth, elevation float64) []float64 {
	if maxDegree < 0 {
		return nil
	}
	out := make([]float64, Channels(maxDegree))

	x := math.Sin(elevation)
	legendre := associatedLegendre(maxDegree, x)

	for n := 0; n <= maxDegree; n++ {
		for m := 0; m <= n; m++ {
			norm := n3dNorm(n, m)
			p := legendre[legendreIndex(n, m)]

			if m == 0 {
				out[Index(n, 0)] = norm * p
				continue
			}

			mf := float64(m)
			out[Index(n, m)] = norm * p * math.Cos(mf*azimuth)
			out[Index(n, -m)] = norm * p * math.Sin(mf*azimuth)
		}
	}

	return out
}

// n3dNorm returns the N3D normalization factor for degree n and
// non-negative order m:
//
//	√((2n+1) · (2-δₘ₀) · (n-m)! / (n+m)!)
//
// The factorial quotient is accumulated as a product to avoid overflowing
// intermediate factorials at higher degrees.
func n3dNorm(n, m int) float64 {
	quotient := 1.0
	for k := n - m + 1; k <= n+m; k++ {
		quotient /= float64(k)
	}

	norm := float64(2*n+1) * quotient
	if m != 0 {
		norm *= 2
	}
	return math.Sqrt(norm)
}

// legendreIndex maps (n, m) with 0 ≤ m ≤ n to a compact linear index
// into the triangular associated-Legendre table.
func legendreIndex(n, m int) int {
	return n*(n+1)/2 + m
}

// associatedLegendre evaluates the associated Legendre functions Pₙᵐ(x)
// for all 0 ≤ m ≤ n ≤ maxDegree, without the Condon-Shortley phase.
//
// Standard recurrences:
//
//	Pₘᵐ   = (2m-1)!! · (1-x²)^(m/2)
//	Pₘ₊₁ᵐ = (2m+1) · x · Pₘᵐ
//	Pₙᵐ   = ((2n-1)·x·Pₙ₋₁ᵐ - (n+m-1)·Pₙ₋₂ᵐ) / (n-m)
func associatedLegendre(maxDegree int, x float64) []float64 {
	p := make([]float64, legendreIndex(maxDegree, maxDegree)+1)
	sine := math.Sqrt(math.Max(0, 1-x*x))

	// Diagonal Pₘᵐ.
	p[0] = 1
	for m := 1; m <= maxDegree; m++ {
		p[legendreIndex(m, m)] = float64(2*m-1) * sine * p[legendreIndex(m-1, m-1)]
	}

	// First off-diagonal Pₘ₊₁ᵐ.
	for m := 0; m < maxDegree; m++ {
		p[legendreIndex(m+1, m)] = float64(2*m+1) * x * p[legendreIndex(m, m)]
	}

	// Upward recurrence in degree.
	for m := 0; m <= maxDegree; m++ {
		for n := m + 2; n <= maxDegree; n++ {
			p[legendreIndex(n, m)] = (float64(2*n-1)*x*p[legendreIndex(n-1, m)] -
				float64(n+m-1)*p[legendreIndex(n-2, m)]) / float64(n-m)
		}
	}

	return p
}
