package engine_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/engine"
)

func TestGraph_ForwardValues(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(3)
	b := g.Leaf(2)

	assert.Equal(t, 5.0, g.Data(g.Add(a, b)))
	assert.Equal(t, 1.0, g.Data(g.Sub(a, b)))
	assert.Equal(t, -3.0, g.Data(g.Neg(a)))
	assert.Equal(t, 6.0, g.Data(g.Mul(a, b)))
	assert.Equal(t, 9.0, g.Data(g.Pow(a, 2)))
	assert.InDelta(t, 0.9950547536867305, g.Data(g.Tanh(a)), 1e-12)
	assert.Equal(t, 3.0, g.Data(g.ReLU(a)))
	assert.Equal(t, 0.0, g.Data(g.ReLU(g.Neg(a))))
}

func TestGraph_LeafHasNoOperandsAndZeroGrad(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1.5)

	assert.Equal(t, 1.5, g.Data(a))
	assert.Equal(t, 0.0, g.Grad(a))
}

func TestGraph_FreezeResetKeepsParameters(t *testing.T) {
	g := engine.NewGraph()
	w := g.Leaf(0.25)
	g.Freeze()

	out := g.Mul(w, g.Leaf(2))
	require.NoError(t, g.Backward(out))
	assert.Equal(t, 2.0, g.Grad(w))
	assert.Equal(t, 3, g.NumNodes()) // w plus two transient nodes

	g.Reset()
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0.25, g.Data(w))
	// grads survive Reset; clearing them is ZeroGrad's job
	assert.Equal(t, 2.0, g.Grad(w))

	g.ZeroGrad([]engine.Value{w})
	assert.Equal(t, 0.0, g.Grad(w))
}

func TestGraph_NonFiniteResultPoisonsGraph(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(-1)
	root := g.Pow(a, 0.5) // NaN: negative base, fractional exponent

	require.Error(t, g.Err())
	assert.True(t, errors.Is(g.Err(), engine.ErrNumericalInstability))

	err := g.Backward(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrNumericalInstability))
	// gradients untouched on a poisoned graph
	assert.Equal(t, 0.0, g.Grad(a))
}

func TestGraph_ResetClearsTransientError(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(-1)
	g.Freeze()

	g.Pow(a, 0.5)
	require.Error(t, g.Err())

	g.Reset()
	require.NoError(t, g.Err())

	out := g.Pow(a, 2)
	require.NoError(t, g.Backward(out))
	assert.Equal(t, -2.0, g.Grad(a))
}

// A second backward after ZeroGrad must reproduce exactly the gradients of
// a first-ever backward on an equivalent freshly built graph.
func TestGraph_ZeroGradPreventsCrossPassLeakage(t *testing.T) {
	build := func(g *engine.Graph, a, b engine.Value) engine.Value {
		// (a*b + b)^2
		return g.Pow(g.Add(g.Mul(a, b), b), 2)
	}

	fresh := engine.NewGraph()
	fa, fb := fresh.Leaf(1.5), fresh.Leaf(-2.0)
	require.NoError(t, fresh.Backward(build(fresh, fa, fb)))

	g := engine.NewGraph()
	a, b := g.Leaf(1.5), g.Leaf(-2.0)
	g.Freeze()
	require.NoError(t, g.Backward(build(g, a, b)))

	g.Reset()
	g.ZeroGrad([]engine.Value{a, b})
	require.NoError(t, g.Backward(build(g, a, b)))

	assert.Equal(t, fresh.Grad(fa), g.Grad(a))
	assert.Equal(t, fresh.Grad(fb), g.Grad(b))
}

// Without ZeroGrad gradients accumulate additively across passes.
func TestGraph_GradientsAccumulateWithoutZeroGrad(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(3)
	g.Freeze()

	require.NoError(t, g.Backward(g.Pow(a, 2)))
	assert.Equal(t, 6.0, g.Grad(a))

	g.Reset()
	require.NoError(t, g.Backward(g.Pow(a, 2)))
	assert.Equal(t, 12.0, g.Grad(a))
}
