package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/engine"
)

func TestBackward_AddReusesOperand(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	c := g.Add(a, b)
	d := g.Add(c, b) // b consumed twice

	assert.Equal(t, 3.0, g.Data(c))
	assert.Equal(t, 5.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	assert.Equal(t, 2.0, g.Grad(b))
	assert.Equal(t, 1.0, g.Grad(a))
}

func TestBackward_SubChain(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	d := g.Sub(g.Sub(a, b), b)

	assert.Equal(t, -3.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	assert.Equal(t, -2.0, g.Grad(b))
}

func TestBackward_MulOfSharedOperand(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	d := g.Mul(g.Add(a, b), b)

	assert.Equal(t, 6.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	// d = (a+b)*b, dd/db = (a+b) + b = 5
	assert.Equal(t, 5.0, g.Grad(b))
}

func TestBackward_MulNegative(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	d := g.Mul(g.Sub(a, b), b)

	assert.Equal(t, -2.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	// d = (a-b)*b, dd/db = -b + (a-b) = -3
	assert.Equal(t, -3.0, g.Grad(b))
}

func TestBackward_Pow(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	d := g.Pow(g.Add(a, b), 2)

	assert.Equal(t, 9.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	assert.Equal(t, 6.0, g.Grad(b))
}

func TestBackward_ReLUActive(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	c := g.Add(a, g.Mul(b, g.Leaf(2)))
	e := g.Mul(g.ReLU(c), g.Leaf(2))

	assert.Equal(t, 10.0, g.Data(e))

	require.NoError(t, g.Backward(e))
	assert.Equal(t, 4.0, g.Grad(b))
}

func TestBackward_ReLUBlocked(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	c := g.Sub(a, g.Mul(b, g.Leaf(2)))
	e := g.Mul(g.ReLU(c), g.Leaf(2))

	assert.Equal(t, 0.0, g.Data(e))

	require.NoError(t, g.Backward(e))
	assert.Equal(t, 0.0, g.Grad(b))
}

func TestBackward_NegUsedTwice(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(3)
	d := g.Mul(g.Neg(a), g.Neg(a))

	assert.Equal(t, 9.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	// d = (-a)*(-a) = a², dd/da = 2a = 6
	assert.Equal(t, 6.0, g.Grad(a))
}

func TestBackward_SameOperandBothSides(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(4)
	d := g.Mul(a, a)

	require.NoError(t, g.Backward(d))
	assert.Equal(t, 8.0, g.Grad(a))
}

// Traversal must dedup by node identity, not value: distinct leaves holding
// equal data each receive their own gradient.
func TestBackward_EqualDataDistinctNodes(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(2)
	b := g.Leaf(2)
	d := g.Mul(a, b)

	require.NoError(t, g.Backward(d))
	assert.Equal(t, 2.0, g.Grad(a))
	assert.Equal(t, 2.0, g.Grad(b))
}

func TestBackward_RootGradIsOne(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(7)
	d := g.Tanh(a)

	require.NoError(t, g.Backward(d))
	assert.Equal(t, 1.0, g.Grad(d))
}

// Diamond graph: x feeds both factors of a product through separate paths,
// so its gradient is the sum of both paths' contributions.
func TestBackward_DiamondAccumulation(t *testing.T) {
	g := engine.NewGraph()
	x := g.Leaf(3)
	left := g.Add(x, g.Leaf(1))  // x+1
	right := g.Mul(x, g.Leaf(2)) // 2x
	d := g.Mul(left, right)      // (x+1)·2x = 2x²+2x

	assert.Equal(t, 24.0, g.Data(d))

	require.NoError(t, g.Backward(d))
	// dd/dx = 4x + 2 = 14
	assert.Equal(t, 14.0, g.Grad(x))
}
