package nn

import (
	"github.com/pkg/errors"

	"github.com/gradix-ml/gradix/internal/engine"
)

// Activation selects the nonlinearity applied after a neuron's affine sum.
type Activation uint8

const (
	None Activation = iota // linear output
	Tanh
	ReLU
)

// ParseActivation maps a name ("none", "tanh", "relu") to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "none", "linear":
		return None, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return None, errors.Wrap(ErrUnknownActivation, name)
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return "none"
	}
}

// apply wraps v in the activation's graph op.
func (a Activation) apply(g *engine.Graph, v engine.Value) engine.Value {
	switch a {
	case Tanh:
		return g.Tanh(v)
	case ReLU:
		return g.ReLU(v)
	default:
		return v
	}
}
