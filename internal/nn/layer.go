package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/engine"
)

// Layer is an ordered set of neurons sharing the same input width.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of outputs neurons, each reading inputs values.
func NewLayer(g *engine.Graph, inputs, outputs int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, outputs)
	for i := range neurons {
		neurons[i] = NewNeuron(g, inputs, act, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward maps the same input vector through every neuron.
func (l *Layer) Forward(inputs []engine.Value) ([]engine.Value, error) {
	outs := make([]engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the flattened parameters of every neuron, in order.
func (l *Layer) Parameters() []engine.Value {
	var ps []engine.Value
	for _, n := range l.neurons {
		ps = append(ps, n.Parameters()...)
	}
	return ps
}

// WeightParameters returns the flattened weights of every neuron, in order.
func (l *Layer) WeightParameters() []engine.Value {
	var ws []engine.Value
	for _, n := range l.neurons {
		ws = append(ws, n.WeightParameters()...)
	}
	return ws
}
