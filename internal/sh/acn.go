// Package sh provides spherical-harmonic indexing and evaluation utilities
// for ambisonics processing.
package sh

import (
	"math"
)

// Index returns the ACN (Ambisonic Channel Number) linear index for the
// harmonic with the given degree n and order m.
//
// The ACN convention enumerates harmonics degree by degree, orders from
// -n to +n within each degree:
//
//	ACN(n, m) = n² + n + m
//
// The mapping is a bijection over all valid (n, m) pairs with |m| ≤ n.
// Index does not validate its arguments; use IsValid when the pair comes
// from untrusted input.
func Index(degree, order int) int {
	return degree*degree + degree + order
}

// Degree recovers the harmonic degree n from an ACN index.
// It is the inverse of Index together with Order.
func Degree(index int) int {
	n := int(math.Sqrt(float64(index)))

	// Guard against floating-point rounding at perfect squares.
	for n*n > index {
		n--
	}
	for (n+1)*(n+1) <= index {
		n++
	}
	return n
}

// Order recovers the harmonic order m from an ACN index.
func Order(index int) int {
	n := Degree(index)
	return index - n*n - n
}

// IsValid reports whether (degree, order) names an existing spherical
// harmonic, i.e. degree ≥ 0 and |order| ≤ degree.
func IsValid(degree, order int) bool {
	if degree < 0 {
		return false
	}
	return order >= -degree && order <= degree
}

// Channels returns the number of ambisonic channels for a full spherical
// expansion up to the given degree: (degree+1)².
func Channels(degree int) int {
	return (degree + 1) * (degree + 1)
}

// DegreeForChannels returns the expansion degree whose channel count equals
// the given value. The second result is false when the count is not a
// perfect square (and therefore not a complete expansion).
func DegreeForChannels(channels int) (int, bool) {
	if channels < 1 {
		return 0, false
	}
	n := Degree(channels - 1)
	if Channels(n) != channels {
		return 0, false
	}
	return n, true
}
