// Package ambisonics computes axial-translation operators for
// spherical-harmonic (ambisonics) sound-field representations in pure Go.
//
// Given a batch of non-dimensional wavenumbers kd (angular wavenumber
// times translation distance) and a maximum ambisonics order L, the
// library produces one complex (L+1)²×(L+1)² matrix per wavenumber that
// maps the spherical-harmonic coefficients of a sound field at one
// expansion origin to the coefficients of the same field at an origin
// displaced along one axis. Matrices are expressed in the real-valued
// N3D normalization with ACN channel ordering.
//
// # Features
//
//   - Gumerov-Duraiswami recurrence for coaxial translation coefficients
//   - Exact identity short-circuit for zero-distance/zero-frequency input
//   - Batched computation over the wavenumber axis, with optional parallel
//     evaluation across samples
//   - N3D/ACN real-basis output via an explicit basis-correction step
//   - Plane-wave encoding helpers for placing sources in a sound field
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For a one-shot batch of translation matrices:
//
//	matrices, err := ambisonics.TranslationMatrices([]float64{0.5, 1.0, 2.0}, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated use with a fixed order, build a Translator:
//
//	tr, err := ambisonics.New(&ambisonics.Config{
//	    MaxOrder:       3,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kd, _ := ambisonics.Wavenumbers(frequencies, 0.25, ambisonics.SpeedOfSoundAir)
//	matrices, err := tr.Matrices(kd)
//
// Each matrix can be applied to an ACN-ordered coefficient vector with
// [Apply].
//
// # Translation Direction
//
// The operator translates along a single axis. Translation in an
// arbitrary direction is obtained by composing this operator with
// sound-field rotations: rotate the translation direction onto the axis,
// translate, rotate back. Rotation operators are outside the scope of
// this package.
//
// # Degenerate Wavenumbers
//
// Wavenumbers at or below an internal threshold (zero distance or zero
// frequency) yield an exact identity matrix by construction: translating
// by nothing changes nothing. Regular wavenumbers run through the full
// recurrence. The partition is computed once per call.
//
// # Thread Safety
//
// A [Translator] carries no mutable state; its methods are safe for
// concurrent use. With Config.EnableParallel the samples of one batch are
// computed on independent goroutines, with results identical to the
// sequential path.
//
// # References
//
// The recurrence follows N. Gumerov and R. Duraiswami, "Fast Multipole
// Methods for the Helmholtz Equation in Three Dimensions" (Elsevier,
// 2004), with the ambisonics conventions of F. Zotter's work on
// spherical-harmonic sound-field processing. See also J. Tylka and
// E. Choueiri's publications on sound-field navigation, which apply the
// same coefficient recursions to higher-order ambisonics.
package ambisonics
