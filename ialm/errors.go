package ialm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates the input matrix is nil or has no entries.
	ErrNilMatrix = errors.New("ialm: input matrix is nil or empty")

	// ErrNonFinite indicates the input matrix contains NaN or ±Inf; the
	// caller must resolve missing data before decomposing.
	ErrNonFinite = errors.New("ialm: input matrix contains NaN or Inf")

	// ErrBadLambda indicates a sparsity weight outside its domain: negative,
	// NaN or ±Inf (zero means auto).
	ErrBadLambda = errors.New("ialm: Lambda must be positive finite, or zero for auto")

	// ErrBadTolerance indicates a Tol that is not a positive finite number.
	ErrBadTolerance = errors.New("ialm: Tol must be positive and finite")

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("ialm: MaxIter must be at least 1")

	// ErrBadSketch indicates a negative Oversample or PowerIters.
	ErrBadSketch = errors.New("ialm: Oversample and PowerIters must be non-negative")
)

// FactorizeError reports a decomposition backend failure together with the
// iteration at which it occurred. Iter 0 marks the initial norm estimation.
// The run is abandoned, never retried.
type FactorizeError struct {
	Iter int
	Err  error
}

func (e *FactorizeError) Error() string {
	return fmt.Sprintf("ialm: SVD failed at iteration %d: %v", e.Iter, e.Err)
}

// Unwrap exposes the backend error for errors.Is/errors.As.
func (e *FactorizeError) Unwrap() error { return e.Err }
