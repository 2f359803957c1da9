package ambisonics

import (
	"fmt"
	"math"

	"github.com/tphakala/go-ambisonics/internal/sh"
)

// Common propagation speeds for wavenumber conversion.
const (
	// SpeedOfSoundAir is the speed of sound in air at 20°C in m/s.
	SpeedOfSoundAir = 343.0

	// SpeedOfSoundWater is the speed of sound in fresh water in m/s.
	SpeedOfSoundWater = 1481.0
)

// Wavenumbers converts a list of frequencies in Hz to non-dimensional
// wavenumbers kd = 2πf·d/c for a translation distance d in meters and
// propagation speed c in m/s.
//
// Frequencies must be non-negative, the distance non-negative, and the
// speed positive.
func Wavenumbers(frequencies []float64, distance, speed float64) ([]float64, error) {
	if distance < 0 {
		return nil, fmt.Errorf("%w: distance must be non-negative", ErrInvalidInput)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("%w: propagation speed must be positive", ErrInvalidInput)
	}

	kd := make([]float64, len(frequencies))
	factor := 2 * math.Pi * distance / speed
	for i, f := range frequencies {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: frequency %d is invalid", ErrInvalidInput, i)
		}
		kd[i] = factor * f
	}
	return kd, nil
}

// ChannelCount returns the number of ambisonic channels for the given
// order: (order+1)².
func ChannelCount(order int) int {
	return sh.Channels(order)
}

// OrderForChannels returns the ambisonics order for a full channel count.
// The second result is false when the count is not a complete expansion
// (not a perfect square).
func OrderForChannels(channels int) (int, bool) {
	return sh.DegreeForChannels(channels)
}

// EncodeDirection returns the ACN-ordered, N3D-normalized plane-wave
// encoding coefficients for a source direction. Azimuth is measured
// counter-clockwise from the front, elevation upward from the horizontal
// plane, both in radians.
//
// Combined with a translation operator this places a source in a sound
// field and observes it from a displaced origin.
func EncodeDirection(maxOrder int, azimuth, elevation float64) ([]float64, error) {
	if maxOrder < 0 || maxOrder > maxSupportedOrder {
		return nil, fmt.Errorf("%w: order out of range", ErrInvalidConfig)
	}
	return sh.Evaluate(maxOrder, azimuth, elevation), nil
}

// NewFirstOrder creates a Translator for first-order (4-channel) material.
func NewFirstOrder() (*Translator, error) {
	return New(&Config{MaxOrder: 1})
}

// NewThirdOrder creates a Translator for third-order (16-channel)
// material, the common higher-order ambisonics production format.
func NewThirdOrder() (*Translator, error) {
	return New(&Config{MaxOrder: 3})
}

// NewFifthOrder creates a Translator for fifth-order (36-channel)
// material.
func NewFifthOrder() (*Translator, error) {
	return New(&Config{MaxOrder: 5})
}
