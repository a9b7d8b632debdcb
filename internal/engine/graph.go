// Package engine implements reverse-mode automatic differentiation over
// scalar values.
//
// A Graph is an arena of scalar nodes; a Value is a stable integer handle
// into that arena. Operations on the Graph append new nodes eagerly during
// the forward pass, and Backward walks the resulting DAG in reverse
// topological order, accumulating each node's share of the upstream
// gradient onto its operands.
//
// Usage:
//
//	g := engine.NewGraph()
//	x := g.Leaf(2.0)
//	y := g.Pow(g.Add(x, g.Leaf(1.0)), 2) // (x+1)²
//	_ = g.Backward(y)
//	_ = g.Grad(x) // 6.0
package engine

import (
	"math"

	"github.com/pkg/errors"
)

// Value is a handle to a node in a Graph. Handles are only meaningful for
// the Graph that created them. Node identity is the handle itself, so two
// nodes holding equal data are still distinct during traversal.
type Value int

// node is a single scalar in the computation graph: the forward value, the
// gradient accumulated during the backward pass, and the operation that
// produced it together with its operand handles. Operands are fixed at
// creation; only data and grad mutate afterwards.
type node struct {
	data float64
	grad float64
	op   Op
	a, b Value   // operand handles, -1 when absent
	exp  float64 // exponent for OpPow
}

// Graph is an arena of scalar nodes forming a computation DAG.
//
// Nodes created before Freeze (typically model parameters) persist across
// passes; everything appended afterwards is transient and is discarded by
// Reset. A Graph is not safe for concurrent use.
type Graph struct {
	nodes  []node
	frozen int
	err    error
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // pre-allocate for common case
	}
}

// push appends a node, poisoning the graph on the first non-finite result.
func (g *Graph) push(n node) Value {
	if g.err == nil && (math.IsNaN(n.data) || math.IsInf(n.data, 0)) {
		g.err = errors.Wrapf(ErrNumericalInstability, "%s produced %v", n.op, n.data)
	}
	g.nodes = append(g.nodes, n)
	return Value(len(g.nodes) - 1)
}

// Err returns the first numeric error recorded on the graph, or nil.
//
// Once set, the error stays until Reset discards the transient nodes that
// produced it. Backward refuses to run on a poisoned graph, so a non-finite
// intermediate never leaks into gradients silently.
func (g *Graph) Err() error {
	return g.err
}

// Data returns the forward value held by v.
func (g *Graph) Data(v Value) float64 {
	return g.nodes[v].data
}

// Grad returns the gradient accumulated on v by the last Backward.
func (g *Graph) Grad(v Value) float64 {
	return g.nodes[v].grad
}

// SetData overwrites the value held by v. Only leaf nodes should be
// mutated; results of operations are not recomputed.
func (g *Graph) SetData(v Value, x float64) {
	if g.err == nil && (math.IsNaN(x) || math.IsInf(x, 0)) {
		g.err = errors.Wrapf(ErrNumericalInstability, "SetData(%v)", x)
	}
	g.nodes[v].data = x
}

// ZeroGrad resets the gradient of each given node to zero.
//
// Gradients accumulate additively across Backward calls, so this must be
// called on all parameter nodes between passes.
func (g *Graph) ZeroGrad(vs []Value) {
	for _, v := range vs {
		g.nodes[v].grad = 0
	}
}

// Freeze extends the persistent prefix of the arena to cover every node
// created so far. Frozen nodes survive Reset; models call this once their
// parameters are allocated.
func (g *Graph) Freeze() {
	g.frozen = len(g.nodes)
}

// Reset discards every node created after the last Freeze and clears any
// numeric error raised by a discarded node. Handles to transient nodes are
// invalidated; parameter data and gradients are left untouched.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:g.frozen]
	g.err = nil
}

// NumNodes returns the number of live nodes in the arena.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}
