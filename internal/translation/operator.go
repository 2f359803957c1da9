// Package translation implements the coaxial (axial) translation operator
// for spherical-harmonic sound-field coefficients.
//
// The operator maps the expansion coefficients of a sound field observed
// at one origin to those of the same field observed at an origin displaced
// along one axis. It is computed by the Gumerov-Duraiswami recurrence: the
// degree-zero row is known in closed form through the spherical Bessel
// function, and higher rows follow from sectorial and interior recursions
// over an overcomplete working range before truncation. Arbitrary
// translation directions are obtained externally by composing this
// operator with rotations.
package translation

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-ambisonics/internal/mathutil"
	"github.com/tphakala/go-ambisonics/internal/sh"
)

// Threshold returns the non-dimensional wavenumber magnitude below which a
// translation is treated as the zero-distance degenerate case.
func Threshold() float64 {
	return kdThreshold
}

// Identity returns the (L+1)²×(L+1)² identity operator for the given
// maximum degree. It is the exact operator for degenerate (near-zero)
// wavenumbers: translating by nothing changes nothing.
func Identity(maxDegree int) *mat.CDense {
	rows := sh.Channels(maxDegree)
	m := mat.NewCDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Matrix computes the axial translation operator for a single regular
// (non-degenerate) non-dimensional wavenumber kd and maximum degree L.
//
// The result is expressed in the real-valued N3D/ACN basis: the internal
// recurrence runs in the complex spherical-harmonic basis and a final
// per-entry (-i)^(degree(col)-degree(row)) correction converts the
// convention. Rows and columns are ACN-ordered, shape (L+1)²×(L+1)².
//
// Matrix is deterministic and has no side effects. Callers are expected to
// route wavenumbers below Threshold to Identity instead; Matrix itself
// does not re-check the partition. Non-finite coefficient anomalies are
// not masked and propagate into the result.
func Matrix(kd float64, maxDegree int) *mat.CDense {
	rows := sh.Channels(maxDegree)
	coeffs := coaxialCoefficients(kd, maxDegree)

	// Truncation: keep the first (L+1)² of the (2L+1)² working columns,
	// then apply the basis correction entry by entry. Exact zeros are left
	// untouched (mat.CDense zero-initializes).
	out := mat.NewCDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		rowDegree := sh.Degree(i)
		for j := 0; j < rows; j++ {
			v := coeffs[i][j]
			if v == 0 {
				continue
			}
			out.Set(i, j, complex(v, 0)*basisPhase(sh.Degree(j)-rowDegree))
		}
	}
	return out
}

// coaxialCoefficients runs the five-pass recurrence and returns the raw
// real-valued coefficients in the complex spherical-harmonic basis, over
// the overcomplete working range: (L+1)² rows by (2L+1)² columns. Columns
// of degree above L exist only as recursion scratch space.
//
// Pass order is a correctness requirement: every pass reads only entries
// fully established by strictly earlier passes, or lower-degree entries of
// its own pass.
func coaxialCoefficients(kd float64, maxDegree int) [][]float64 {
	rows := sh.Channels(maxDegree)
	cols := sh.Channels(2 * maxDegree)

	t := make([][]float64, rows)
	backing := make([]float64, rows*cols)
	for i := range t {
		t[i] = backing[i*cols : (i+1)*cols]
	}

	// Pass 1: degree-zero seed. Writes row (0,0), columns (l,0) for
	// l = 0..2L: the response of the zeroth-degree receiver to axial
	// translation, known in closed form through jₗ(kd).
	bessel := mathutil.SphericalBesselSeq(2*maxDegree, kd)
	sign := 1.0
	for l := 0; l <= 2*maxDegree; l++ {
		t[sh.Index(0, 0)][sh.Index(l, 0)] = sign * math.Sqrt(float64(2*l+1)) * bessel[l]
		sign = -sign
	}

	// Pass 2: sectorial growth. For n = 1..L, l = n..2L-n, derives
	// (n,n)→(l,n) from the previous diagonal row (n-1,n-1) at column
	// degrees l-1 and l+1. Never reads ahead on either axis.
	for n := 1; n <= maxDegree; n++ {
		row := sh.Index(n, n)
		prev := sh.Index(n-1, n-1)
		div := coefficientB(n, -n)

		for l := n; l <= 2*maxDegree-n; l++ {
			t[row][sh.Index(l, n)] = (coefficientB(l, -n)*t[prev][sh.Index(l-1, n-1)] -
				coefficientB(l+1, n-1)*t[prev][sh.Index(l+1, n-1)]) / div
		}
	}

	// Pass 3: interior fill. For m = 0..L-1, n = m..L-1,
	// l = n+1..2L-(n+1), derives (n+1,m)→(l,m) by the three-term vertical
	// recurrence from row (n,m) at columns l±1 and, when it exists, row
	// (n-1,m) at column l. The lower-degree term does not exist when
	// n = m; coefficientA(n-1, m) is exactly zero there by convention and
	// the term is skipped on that branch rather than evaluated.
	for m := 0; m < maxDegree; m++ {
		for n := m; n < maxDegree; n++ {
			div := coefficientA(n, m)
			guard := coefficientA(n-1, m)
			cur := sh.Index(n, m)
			next := sh.Index(n+1, m)
			below := sh.Index(n-1, m)

			for l := n + 1; l <= 2*maxDegree-(n+1); l++ {
				v := coefficientA(l, m)*t[cur][sh.Index(l+1, m)] -
					coefficientA(l-1, m)*t[cur][sh.Index(l-1, m)]
				if guard != 0 {
					v -= guard * t[below][sh.Index(l, m)]
				}
				t[next][sh.Index(l, m)] = -v / div
			}
		}
	}

	// Pass 4: negative-order mirror. For n = 1..L, l = n..L, m = 1..n,
	// copies (n,m)→(l,m) into (n,-m)→(l,-m). Coaxial coefficients do not
	// depend on the sign of the order.
	for n := 1; n <= maxDegree; n++ {
		for l := n; l <= maxDegree; l++ {
			for m := 1; m <= n; m++ {
				t[sh.Index(n, -m)][sh.Index(l, -m)] = t[sh.Index(n, m)][sh.Index(l, m)]
			}
		}
	}

	// Pass 5: transpose with phase. For n = 0..L, l = n+1..L, m = -n..n,
	// fills the lower-triangular part (l,m)→(n,m) from the reciprocity
	// symmetry (-1)^(n+l) of the already-known upper part.
	for n := 0; n <= maxDegree; n++ {
		for l := n + 1; l <= maxDegree; l++ {
			phase := 1.0
			if (n+l)%2 != 0 {
				phase = -1.0
			}
			for m := -n; m <= n; m++ {
				t[sh.Index(l, m)][sh.Index(n, m)] = phase * t[sh.Index(n, m)][sh.Index(l, m)]
			}
		}
	}

	return t
}

// basisPhase returns (-i)^k for any integer k, the per-entry factor that
// converts the recurrence's complex spherical-harmonic convention to the
// real-valued N3D/ACN basis.
func basisPhase(k int) complex128 {
	switch ((k % 4) + 4) % 4 {
	case 0:
		return 1
	case 1:
		return complex(0, -1)
	case 2:
		return -1
	default:
		return complex(0, 1)
	}
}
