package nn

import "github.com/pkg/errors"

// Common errors.
var (
	// ErrDimensionMismatch is returned when a forward pass receives an
	// input vector whose length disagrees with a neuron's weight count.
	ErrDimensionMismatch = errors.New("input dimension mismatch")

	// ErrUnknownActivation is returned by ParseActivation for names outside
	// the supported set.
	ErrUnknownActivation = errors.New("unknown activation")
)
