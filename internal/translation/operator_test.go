package translation

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ambisonics/internal/mathutil"
	"github.com/tphakala/go-ambisonics/internal/sh"
)

const operatorTolerance = 1e-10

func TestIdentityShapeAndValues(t *testing.T) {
	for _, degree := range []int{0, 1, 3} {
		m := Identity(degree)
		rows, cols := m.Dims()
		require.Equal(t, sh.Channels(degree), rows)
		require.Equal(t, rows, cols)

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want := complex128(0)
				if i == j {
					want = 1
				}
				assert.Equal(t, want, m.At(i, j), "(%d,%d)", i, j)
			}
		}
	}
}

func TestMatrixDegreeZeroClosedForm(t *testing.T) {
	for _, kd := range []float64{0.5, 1.0, 2.5, 7.0} {
		m := Matrix(kd, 0)
		rows, cols := m.Dims()
		require.Equal(t, 1, rows)
		require.Equal(t, 1, cols)
		assert.InDelta(t, mathutil.SphericalBesselJ(0, kd), real(m.At(0, 0)),
			operatorTolerance, "kd=%v", kd)
		assert.Zero(t, imag(m.At(0, 0)))
	}
}

// TestCoaxialFirstOrderClosedForms anchors the recurrence against the
// textbook first-order coaxial coefficients: the axial dipole couples to
// itself as j₀-2j₂ and the transverse dipoles as j₀+j₂.
func TestCoaxialFirstOrderClosedForms(t *testing.T) {
	for _, kd := range []float64{0.3, 1.0, 2.5, 6.0} {
		coeffs := CoaxialCoefficients(kd, 1)

		j0 := mathutil.SphericalBesselJ(0, kd)
		j1 := mathutil.SphericalBesselJ(1, kd)
		j2 := mathutil.SphericalBesselJ(2, kd)

		assert.InDelta(t, j0, coeffs[sh.Index(0, 0)][sh.Index(0, 0)],
			operatorTolerance, "(0,0)->(0,0) kd=%v", kd)
		assert.InDelta(t, -math.Sqrt(3)*j1, coeffs[sh.Index(0, 0)][sh.Index(1, 0)],
			operatorTolerance, "(0,0)->(1,0) kd=%v", kd)
		assert.InDelta(t, j0-2*j2, coeffs[sh.Index(1, 0)][sh.Index(1, 0)],
			operatorTolerance, "(1,0)->(1,0) kd=%v", kd)
		assert.InDelta(t, j0+j2, coeffs[sh.Index(1, 1)][sh.Index(1, 1)],
			operatorTolerance, "(1,1)->(1,1) kd=%v", kd)
		assert.InDelta(t, j0+j2, coeffs[sh.Index(1, -1)][sh.Index(1, -1)],
			operatorTolerance, "(1,-1)->(1,-1) kd=%v", kd)
	}
}

// TestCoaxialReciprocity verifies the transpose-with-phase relation
// t[(l,m)][(n,m)] = (-1)^(n+l) · t[(n,m)][(l,m)] on the raw coefficients,
// before the basis correction reshuffles the phases.
func TestCoaxialReciprocity(t *testing.T) {
	const maxDegree = 4
	coeffs := CoaxialCoefficients(2.5, maxDegree)

	for n := 0; n <= maxDegree; n++ {
		for l := n + 1; l <= maxDegree; l++ {
			phase := math.Pow(-1, float64(n+l))
			for m := -n; m <= n; m++ {
				upper := coeffs[sh.Index(n, m)][sh.Index(l, m)]
				lower := coeffs[sh.Index(l, m)][sh.Index(n, m)]
				assert.InDelta(t, phase*upper, lower, operatorTolerance,
					"(%d,%d)<->(%d,%d)", n, m, l, m)
			}
		}
	}
}

// TestCoaxialSmallArgumentApproachesIdentity checks that the regular path
// is continuous with the degenerate one: just above the threshold the
// operator is within first-order Bessel terms of identity.
func TestCoaxialSmallArgumentApproachesIdentity(t *testing.T) {
	const maxDegree = 3
	const kd = 1e-4

	m := Matrix(kd, maxDegree)
	rows, _ := m.Dims()

	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, 0, cmplx.Abs(m.At(i, j)-want), 1e-3,
				"(%d,%d)", i, j)
		}
	}
}

// TestMatrixSymmetry: the basis correction maps the signed reciprocity of
// the raw coefficients to plain symmetry of the returned operator.
func TestMatrixSymmetry(t *testing.T) {
	for _, degree := range []int{1, 2, 4} {
		m := Matrix(2.5, degree)
		rows, _ := m.Dims()

		for i := 0; i < rows; i++ {
			for j := i + 1; j < rows; j++ {
				assert.InDelta(t, 0, cmplx.Abs(m.At(i, j)-m.At(j, i)),
					operatorTolerance, "degree=%d (%d,%d)", degree, i, j)
			}
		}
	}
}

// TestMatrixMirror: entries are invariant under negating the harmonic
// order on both sides.
func TestMatrixMirror(t *testing.T) {
	const maxDegree = 4
	m := Matrix(3.7, maxDegree)

	for n := 1; n <= maxDegree; n++ {
		for l := 1; l <= maxDegree; l++ {
			top := min(n, l)
			for mm := 1; mm <= top; mm++ {
				pos := m.At(sh.Index(n, mm), sh.Index(l, mm))
				neg := m.At(sh.Index(n, -mm), sh.Index(l, -mm))
				assert.InDelta(t, 0, cmplx.Abs(pos-neg), operatorTolerance,
					"(%d,±%d)->(%d,±%d)", n, mm, l, mm)
			}
		}
	}
}

// TestMatrixDegreeParity: after the (-i)^Δdegree correction, entries with
// even degree difference are purely real and odd ones purely imaginary.
func TestMatrixDegreeParity(t *testing.T) {
	const maxDegree = 3
	m := Matrix(1.8, maxDegree)
	rows, _ := m.Dims()

	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			v := m.At(i, j)
			if (sh.Degree(i)+sh.Degree(j))%2 == 0 {
				assert.InDelta(t, 0, imag(v), operatorTolerance, "(%d,%d)", i, j)
			} else {
				assert.InDelta(t, 0, real(v), operatorTolerance, "(%d,%d)", i, j)
			}
		}
	}
}

// TestMatrixOrderDiagonal: axial translation never couples harmonics of
// different order m.
func TestMatrixOrderDiagonal(t *testing.T) {
	const maxDegree = 3
	m := Matrix(2.2, maxDegree)
	rows, _ := m.Dims()

	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			if sh.Order(i) != sh.Order(j) {
				assert.Zero(t, m.At(i, j), "(%d,%d)", i, j)
			}
		}
	}
}

// TestCoaxialEnergyBound: each row of the exact operator has unit energy;
// the truncated operator must stay at or below it.
func TestCoaxialEnergyBound(t *testing.T) {
	const maxDegree = 3
	m := Matrix(1.5, maxDegree)
	rows, _ := m.Dims()

	for i := 0; i < rows; i++ {
		var energy float64
		for j := 0; j < rows; j++ {
			a := cmplx.Abs(m.At(i, j))
			energy += a * a
		}
		assert.LessOrEqual(t, energy, 1.0+operatorTolerance, "row %d", i)
	}
}

func TestThreshold(t *testing.T) {
	assert.Greater(t, Threshold(), 0.0)
	assert.Less(t, Threshold(), 1e-3)
}
