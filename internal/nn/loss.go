package nn

import "github.com/gradix-ml/gradix/internal/engine"

// LossFunc reduces one prediction and its expected label to a scalar loss
// node. Losses are built entirely from graph ops so they differentiate
// through Backward like any other node.
type LossFunc func(g *engine.Graph, pred engine.Value, target float64) engine.Value

// MSE is the squared error (pred - target)².
func MSE(g *engine.Graph, pred engine.Value, target float64) engine.Value {
	return g.Pow(g.Sub(pred, g.Leaf(target)), 2)
}

// MaxMargin is the SVM hinge loss max(0, 1 - target·pred) for ±1 labels.
func MaxMargin(g *engine.Graph, pred engine.Value, target float64) engine.Value {
	return g.ReLU(g.Add(g.Neg(g.Mul(g.Leaf(target), pred)), g.Leaf(1)))
}

// L2Penalty returns lambda · Σ w² over the given weight handles.
//
// Pass the model's WeightParameters: bias nodes are excluded from the
// penalty by convention. A zero lambda yields an exactly-zero term, so the
// total loss equals the raw loss.
func L2Penalty(g *engine.Graph, lambda float64, weights []engine.Value) engine.Value {
	sum := g.Leaf(0)
	for _, w := range weights {
		sum = g.Add(sum, g.Pow(w, 2))
	}
	return g.Mul(g.Leaf(lambda), sum)
}
