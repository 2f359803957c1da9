// Package testutil provides reusable test helper functions for the
// translation operator tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	LooseTolerance   = 1e-8
)

// AssertIdentity verifies that a complex matrix equals the identity within
// the tolerance.
func AssertIdentity(t *testing.T, m *mat.CDense, tolerance float64) bool {
	t.Helper()
	rows, cols := m.Dims()
	if !assert.Equal(t, rows, cols, "identity must be square") {
		return false
	}

	ok := true
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if !assert.InDelta(t, 0, cmplx.Abs(m.At(i, j)-want), tolerance,
				"entry (%d,%d) = %v", i, j, m.At(i, j)) {
				ok = false
			}
		}
	}
	return ok
}

// AssertMatricesEqual verifies two complex matrices agree entrywise within
// the tolerance.
func AssertMatricesEqual(t *testing.T, want, got *mat.CDense, tolerance float64) bool {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	if !assert.Equal(t, wr, gr, "row count") || !assert.Equal(t, wc, gc, "column count") {
		return false
	}

	ok := true
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			if !assert.InDelta(t, 0, cmplx.Abs(want.At(i, j)-got.At(i, j)), tolerance,
				"entry (%d,%d): want %v, got %v", i, j, want.At(i, j), got.At(i, j)) {
				ok = false
			}
		}
	}
	return ok
}

// AssertNoNaNOrInf verifies that no entries of a complex matrix are NaN
// or Inf.
func AssertNoNaNOrInf(t *testing.T, m *mat.CDense) bool {
	t.Helper()
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if cmplx.IsNaN(v) {
				return assert.Fail(t, "found NaN", "entry (%d,%d)", i, j)
			}
			if cmplx.IsInf(v) {
				return assert.Fail(t, "found Inf", "entry (%d,%d)", i, j)
			}
		}
	}
	return true
}

// AssertSymmetric verifies m[i][j] == m[j][i] within the tolerance.
func AssertSymmetric(t *testing.T, m *mat.CDense, tolerance float64) bool {
	t.Helper()
	rows, cols := m.Dims()
	if !assert.Equal(t, rows, cols, "symmetric matrix must be square") {
		return false
	}

	ok := true
	for i := 0; i < rows; i++ {
		for j := i + 1; j < cols; j++ {
			if !assert.InDelta(t, 0, cmplx.Abs(m.At(i, j)-m.At(j, i)), tolerance,
				"asymmetric at (%d,%d): %v vs %v", i, j, m.At(i, j), m.At(j, i)) {
				ok = false
			}
		}
	}
	return ok
}

// MaxAbsDifference returns the largest entrywise magnitude difference
// between two equally-sized complex matrices.
func MaxAbsDifference(a, b *mat.CDense) float64 {
	rows, cols := a.Dims()
	var maxDiff float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			maxDiff = math.Max(maxDiff, cmplx.Abs(a.At(i, j)-b.At(i, j)))
		}
	}
	return maxDiff
}
