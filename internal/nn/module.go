// Package nn composes scalar autodiff values into small feed-forward
// networks.
//
// This package provides:
//   - Module interface: base interface for all network components
//   - Neuron, Layer, MLP: parameterized forward functions
//   - Loss functions: MSE, MaxMargin
//   - L2Penalty: regularization term over weight parameters
//
// Parameters are leaf nodes owned by the model for its lifetime; each
// Forward call builds a transient graph of intermediates on top of them.
package nn

import "github.com/gradix-ml/gradix/internal/engine"

// Module is the base interface for network components.
//
// Parameters returns every trainable leaf of the module in a stable,
// deterministic order (weights before bias, neuron by neuron, layer by
// layer). Optimizers and regularization both rely on this order being
// reproducible across runs.
type Module interface {
	Parameters() []engine.Value
}

// Inputs converts a plain input vector into transient leaf nodes on g.
func Inputs(g *engine.Graph, xs []float64) []engine.Value {
	vs := make([]engine.Value, len(xs))
	for i, x := range xs {
		vs[i] = g.Leaf(x)
	}
	return vs
}
