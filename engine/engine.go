// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides reverse-mode automatic differentiation over
// scalar values.
//
// Example:
//
//	import "github.com/gradix-ml/gradix/engine"
//
//	func main() {
//	    g := engine.New()
//	    x := g.Leaf(2.0)
//	    y := g.Pow(g.Add(x, g.Leaf(1.0)), 2) // (x+1)²
//	    if err := g.Backward(y); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(g.Grad(x)) // 6
//	}
package engine

import "github.com/gradix-ml/gradix/internal/engine"

// Graph is an arena of scalar nodes forming a computation DAG.
type Graph = engine.Graph

// Value is a handle to a node in a Graph.
type Value = engine.Value

// Op tags the operation that produced a node.
type Op = engine.Op

// Operation tags.
const (
	OpLeaf = engine.OpLeaf
	OpAdd  = engine.OpAdd
	OpSub  = engine.OpSub
	OpNeg  = engine.OpNeg
	OpMul  = engine.OpMul
	OpPow  = engine.OpPow
	OpTanh = engine.OpTanh
	OpReLU = engine.OpReLU
)

// ErrNumericalInstability marks an operation that produced a non-finite value.
var ErrNumericalInstability = engine.ErrNumericalInstability

// New creates an empty graph.
func New() *Graph {
	return engine.NewGraph()
}
