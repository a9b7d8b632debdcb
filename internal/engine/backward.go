package engine

import "math"

// Backward runs the reverse-mode pass from root.
//
// The gradient of root with respect to itself is 1. Nodes reachable from
// root are collected in depth-first post-order, deduplicated by handle, and
// visited in reverse: every consumer of a node is processed before the node
// itself, so each gradient is fully accumulated before it propagates to its
// operands.
//
// Returns the graph's numeric error, if any, without touching gradients.
func (g *Graph) Backward(root Value) error {
	if g.err != nil {
		return g.err
	}
	order := g.topo(root)
	g.nodes[root].grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
	return nil
}

// topo returns the nodes reachable from root in depth-first post-order.
// Visited tracking is by handle, not by value: distinct nodes carrying
// equal data are still traversed separately, while a node reached through
// several consumers is emitted once.
func (g *Graph) topo(root Value) []Value {
	order := make([]Value, 0, len(g.nodes))
	visited := make([]bool, len(g.nodes))

	var visit func(Value)
	visit = func(v Value) {
		if visited[v] {
			return
		}
		visited[v] = true
		n := &g.nodes[v]
		if n.a >= 0 {
			visit(n.a)
		}
		if n.b >= 0 {
			visit(n.b)
		}
		order = append(order, v)
	}
	visit(root)

	return order
}

// propagate applies v's derivative rule, adding each operand's share of the
// upstream gradient. Contributions accumulate: a node used as an operand in
// several places receives one share per use.
func (g *Graph) propagate(v Value) {
	n := g.nodes[v]
	switch n.op {
	case OpLeaf:
		// no operands
	case OpAdd:
		g.nodes[n.a].grad += n.grad
		g.nodes[n.b].grad += n.grad
	case OpSub:
		g.nodes[n.a].grad += n.grad
		g.nodes[n.b].grad -= n.grad
	case OpNeg:
		g.nodes[n.a].grad -= n.grad
	case OpMul:
		g.nodes[n.a].grad += g.nodes[n.b].data * n.grad
		g.nodes[n.b].grad += g.nodes[n.a].data * n.grad
	case OpPow:
		g.nodes[n.a].grad += n.exp * math.Pow(g.nodes[n.a].data, n.exp-1) * n.grad
	case OpTanh:
		// d(tanh x)/dx = 1 - tanh²(x), and n.data already holds tanh(x)
		g.nodes[n.a].grad += (1 - n.data*n.data) * n.grad
	case OpReLU:
		// gradient passes at exactly zero
		if g.nodes[n.a].data >= 0 {
			g.nodes[n.a].grad += n.grad
		}
	}
}
