package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/engine"
)

// MLP is a feed-forward stack of layers. Hidden layers use the configured
// activation; the output layer is linear.
//
// NewMLP freezes the graph once all parameters are allocated, so callers
// may Reset the graph between passes without losing them.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with the given input width and layer sizes.
// arch lists every layer's output width including the final one, e.g.
// NewMLP(g, 2, []int{5, 5, 1}, nn.ReLU, rng) for a 2-input, 1-output net.
func NewMLP(g *engine.Graph, inputs int, arch []int, act Activation, rng *rand.Rand) *MLP {
	layers := make([]*Layer, len(arch))
	in := inputs
	for i, out := range arch {
		layerAct := act
		if i == len(arch)-1 {
			layerAct = None
		}
		layers[i] = NewLayer(g, in, out, layerAct, rng)
		in = out
	}
	g.Freeze()
	return &MLP{layers: layers}
}

// Forward threads each layer's outputs into the next layer's inputs and
// returns the final layer's outputs.
func (m *MLP) Forward(inputs []engine.Value) ([]engine.Value, error) {
	vs := inputs
	for _, l := range m.layers {
		outs, err := l.Forward(vs)
		if err != nil {
			return nil, err
		}
		vs = outs
	}
	return vs, nil
}

// Parameters returns every weight and bias across the whole model, in a
// stable deterministic order.
func (m *MLP) Parameters() []engine.Value {
	var ps []engine.Value
	for _, l := range m.layers {
		ps = append(ps, l.Parameters()...)
	}
	return ps
}

// WeightParameters returns every weight across the model, biases excluded.
func (m *MLP) WeightParameters() []engine.Value {
	var ws []engine.Value
	for _, l := range m.layers {
		ws = append(ws, l.WeightParameters()...)
	}
	return ws
}
