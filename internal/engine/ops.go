package engine

import "math"

// Op tags the operation that produced a node. The set is closed: every
// derivative rule is dispatched by a single switch in propagate, so the
// rules stay auditable in one place.
type Op uint8

const (
	OpLeaf Op = iota // constant or trainable parameter, no operands
	OpAdd            // a + b
	OpSub            // a - b
	OpNeg            // -a
	OpMul            // a * b
	OpPow            // a^exp, exp a plain constant
	OpTanh           // tanh(a)
	OpReLU           // max(0, a)
)

// String returns the op name, for error messages and debugging.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "Leaf"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpNeg:
		return "Neg"
	case OpMul:
		return "Mul"
	case OpPow:
		return "Pow"
	case OpTanh:
		return "Tanh"
	case OpReLU:
		return "ReLU"
	default:
		return "Unknown"
	}
}

// Leaf appends a new leaf node holding x. Leaves have no operands; both
// constants and trainable parameters are leaves, distinguished only by
// whether the caller freezes and updates them.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{data: x, op: OpLeaf, a: -1, b: -1})
}

// Add returns a node for a + b.
func (g *Graph) Add(a, b Value) Value {
	return g.push(node{data: g.nodes[a].data + g.nodes[b].data, op: OpAdd, a: a, b: b})
}

// Sub returns a node for a - b.
func (g *Graph) Sub(a, b Value) Value {
	return g.push(node{data: g.nodes[a].data - g.nodes[b].data, op: OpSub, a: a, b: b})
}

// Neg returns a node for -a.
func (g *Graph) Neg(a Value) Value {
	return g.push(node{data: -g.nodes[a].data, op: OpNeg, a: a, b: -1})
}

// Mul returns a node for a * b.
func (g *Graph) Mul(a, b Value) Value {
	return g.push(node{data: g.nodes[a].data * g.nodes[b].data, op: OpMul, a: a, b: b})
}

// Pow returns a node for a raised to a constant exponent.
//
// A negative base with a fractional exponent yields NaN, which poisons the
// graph with ErrNumericalInstability rather than propagating.
func (g *Graph) Pow(a Value, exp float64) Value {
	return g.push(node{data: math.Pow(g.nodes[a].data, exp), op: OpPow, a: a, b: -1, exp: exp})
}

// Tanh returns a node for tanh(a).
func (g *Graph) Tanh(a Value) Value {
	return g.push(node{data: math.Tanh(g.nodes[a].data), op: OpTanh, a: a, b: -1})
}

// ReLU returns a node for max(0, a).
func (g *Graph) ReLU(a Value) Value {
	data := g.nodes[a].data
	if data < 0 {
		data = 0
	}
	return g.push(node{data: data, op: OpReLU, a: a, b: -1})
}
