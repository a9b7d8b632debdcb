package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/gradix-ml/gradix/internal/engine"
)

// Neuron is a single unit: Σ wᵢ·xᵢ + b, optionally passed through an
// activation. Weights and bias are leaf nodes owned by the neuron for its
// lifetime; only the optimizer mutates their data between passes.
type Neuron struct {
	g       *engine.Graph
	weights []engine.Value
	bias    engine.Value
	act     Activation
}

// NewNeuron creates a neuron with the given input width.
//
// Weights are drawn uniformly from [-1, 1) using the supplied generator, so
// initialization is reproducible given the seed; bias starts at zero.
func NewNeuron(g *engine.Graph, inputs int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]engine.Value, inputs)
	for i := range weights {
		weights[i] = g.Leaf(rng.Float64()*2 - 1)
	}
	return &Neuron{
		g:       g,
		weights: weights,
		bias:    g.Leaf(0),
		act:     act,
	}
}

// Forward computes the neuron's output for one input vector.
//
// Returns ErrDimensionMismatch when the input width disagrees with the
// weight count, and the graph's numeric error if any op produced a
// non-finite value.
func (n *Neuron) Forward(inputs []engine.Value) (engine.Value, error) {
	if len(inputs) != len(n.weights) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"neuron has %d weights, got %d inputs", len(n.weights), len(inputs))
	}

	sum := n.g.Leaf(0)
	for i, w := range n.weights {
		sum = n.g.Add(sum, n.g.Mul(w, inputs[i]))
	}
	sum = n.g.Add(sum, n.bias)
	out := n.act.apply(n.g, sum)

	if err := n.g.Err(); err != nil {
		return 0, err
	}
	return out, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []engine.Value {
	ps := make([]engine.Value, 0, len(n.weights)+1)
	ps = append(ps, n.weights...)
	ps = append(ps, n.bias)
	return ps
}

// WeightParameters returns the weights only. L2 regularization excludes
// biases by convention.
func (n *Neuron) WeightParameters() []engine.Value {
	ws := make([]engine.Value, len(n.weights))
	copy(ws, n.weights)
	return ws
}
