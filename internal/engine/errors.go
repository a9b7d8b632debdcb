package engine

import "github.com/pkg/errors"

// Common errors.
var (
	// ErrNumericalInstability marks an operation that produced a non-finite
	// value, e.g. Pow with a negative base and fractional exponent. The
	// graph fails fast: the error is recorded when the node is created and
	// Backward refuses to run until Reset discards the offending nodes.
	ErrNumericalInstability = errors.New("operation produced a non-finite value")
)
