package ambisonics

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-ambisonics/internal/sh"
	"github.com/tphakala/go-ambisonics/internal/translation"
)

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid translator configuration")

	// ErrInvalidInput indicates malformed wavenumber or coefficient input.
	ErrInvalidInput = errors.New("invalid translation input")
)

// Config holds translation operator configuration.
type Config struct {
	// MaxOrder is the maximum spherical-harmonic order L of the operator.
	// The resulting matrices are (L+1)²×(L+1)².
	MaxOrder int

	// EnableParallel enables parallel computation across the wavenumber
	// batch. Each sample's matrix is independent of every other sample's,
	// so the batch parallelizes with no synchronization beyond the final
	// gather. Has no effect on single-sample batches.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxOrder < 0 {
		return fmt.Errorf("%w: max order must be non-negative", ErrInvalidConfig)
	}
	if c.MaxOrder > maxSupportedOrder {
		return fmt.Errorf("%w: max order too large (max %d)", ErrInvalidConfig, maxSupportedOrder)
	}
	return nil
}

// Translator computes axial translation operators for a fixed maximum
// order. It carries no mutable state; all methods are safe for concurrent
// use.
type Translator struct {
	config Config
}

// New creates a new Translator with the specified configuration.
func New(config *Config) (*Translator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Translator{config: *config}, nil
}

// MaxOrder returns the configured maximum spherical-harmonic order.
func (t *Translator) MaxOrder() int {
	return t.config.MaxOrder
}

// Channels returns the matrix dimension (L+1)².
func (t *Translator) Channels() int {
	return sh.Channels(t.config.MaxOrder)
}

// Matrices computes the axial translation operator for every wavenumber in
// kd and returns one (L+1)²×(L+1)² complex matrix per sample, in input
// order.
//
// kd must be non-empty and every element finite and non-negative;
// otherwise an error wrapping ErrInvalidInput is returned before any
// computation. Wavenumbers at or below the internal zero-translation
// threshold produce exact identity matrices; the remaining samples run
// through the translation recurrence independently of one another.
func (t *Translator) Matrices(kd []float64) ([]*mat.CDense, error) {
	if err := validateWavenumbers(kd); err != nil {
		return nil, err
	}

	// Partition into degenerate and regular samples once, up front. The
	// two subsets are disjoint and exhaustive over the batch.
	degenerate := make([]bool, len(kd))
	threshold := translation.Threshold()
	for i, v := range kd {
		degenerate[i] = v < threshold
	}

	out := make([]*mat.CDense, len(kd))

	compute := func(i int) {
		if degenerate[i] {
			out[i] = translation.Identity(t.config.MaxOrder)
			return
		}
		out[i] = translation.Matrix(kd[i], t.config.MaxOrder)
	}

	// Sequential processing (default or when parallel disabled).
	if !t.config.EnableParallel || len(kd) <= 1 {
		for i := range kd {
			compute(i)
		}
		return out, nil
	}

	// Parallel processing: each goroutine owns a disjoint slot of the
	// result, so no locking is needed.
	var wg sync.WaitGroup
	for i := range kd {
		wg.Add(1)
		go func(sample int) {
			defer wg.Done()
			compute(sample)
		}(i)
	}
	wg.Wait()

	return out, nil
}

// Matrix computes the operator for a single wavenumber. It is equivalent
// to Matrices with a one-element batch.
func (t *Translator) Matrix(kd float64) (*mat.CDense, error) {
	matrices, err := t.Matrices([]float64{kd})
	if err != nil {
		return nil, err
	}
	return matrices[0], nil
}

// TranslationMatrices is a one-shot helper: it computes the operator batch
// for the given wavenumbers and maximum order without building a
// Translator explicitly.
func TranslationMatrices(kd []float64, maxOrder int) ([]*mat.CDense, error) {
	t, err := New(&Config{MaxOrder: maxOrder})
	if err != nil {
		return nil, err
	}
	return t.Matrices(kd)
}

// Apply multiplies a translation operator by an ACN-ordered coefficient
// vector, returning the coefficients of the translated sound field.
func Apply(m *mat.CDense, coeffs []complex128) ([]complex128, error) {
	rows, cols := m.Dims()
	if len(coeffs) != cols {
		return nil, fmt.Errorf("%w: expected %d coefficients, got %d",
			ErrInvalidInput, cols, len(coeffs))
	}

	out := make([]complex128, rows)
	for i := 0; i < rows; i++ {
		var sum complex128
		for j := 0; j < cols; j++ {
			sum += m.At(i, j) * coeffs[j]
		}
		out[i] = sum
	}
	return out, nil
}

// validateWavenumbers rejects empty batches and negative or non-finite
// wavenumbers before any allocation.
func validateWavenumbers(kd []float64) error {
	if len(kd) == 0 {
		return fmt.Errorf("%w: empty wavenumber batch", ErrInvalidInput)
	}
	for i, v := range kd {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: wavenumber %d is not finite", ErrInvalidInput, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: wavenumber %d is negative", ErrInvalidInput, i)
		}
	}
	return nil
}
