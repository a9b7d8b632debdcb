// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks: Neuron, Layer
// and MLP, plus loss functions and L2 regularization.
//
// Example:
//
//	g := engine.New()
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(g, 2, []int{5, 5, 1}, nn.ReLU, rng)
//	outs, err := model.Forward(nn.Inputs(g, []float64{0.5, -0.3}))
package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/engine"
	"github.com/gradix-ml/gradix/internal/nn"
)

// Module is the base interface for network components.
type Module = nn.Module

// Neuron is a single unit: Σ wᵢ·xᵢ + b with an optional activation.
type Neuron = nn.Neuron

// Layer is an ordered set of neurons sharing the same input width.
type Layer = nn.Layer

// MLP is a feed-forward stack of layers.
type MLP = nn.MLP

// Activation selects the nonlinearity applied after a neuron's affine sum.
type Activation = nn.Activation

// Supported activations.
const (
	None = nn.None
	Tanh = nn.Tanh
	ReLU = nn.ReLU
)

// LossFunc reduces one prediction and its label to a scalar loss node.
type LossFunc = nn.LossFunc

// Common errors.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrUnknownActivation = nn.ErrUnknownActivation
)

// NewNeuron creates a neuron with the given input width.
func NewNeuron(g *engine.Graph, inputs int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, inputs, act, rng)
}

// NewLayer creates a layer of outputs neurons, each reading inputs values.
func NewLayer(g *engine.Graph, inputs, outputs int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, inputs, outputs, act, rng)
}

// NewMLP creates a network with the given input width and layer sizes.
func NewMLP(g *engine.Graph, inputs int, arch []int, act Activation, rng *rand.Rand) *MLP {
	return nn.NewMLP(g, inputs, arch, act, rng)
}

// ParseActivation maps a name ("none", "tanh", "relu") to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Inputs converts a plain input vector into transient leaf nodes on g.
func Inputs(g *engine.Graph, xs []float64) []engine.Value {
	return nn.Inputs(g, xs)
}

// MSE is the squared error (pred - target)².
func MSE(g *engine.Graph, pred engine.Value, target float64) engine.Value {
	return nn.MSE(g, pred, target)
}

// MaxMargin is the SVM hinge loss max(0, 1 - target·pred) for ±1 labels.
func MaxMargin(g *engine.Graph, pred engine.Value, target float64) engine.Value {
	return nn.MaxMargin(g, pred, target)
}

// L2Penalty returns lambda · Σ w² over the given weight handles.
func L2Penalty(g *engine.Graph, lambda float64, weights []engine.Value) engine.Value {
	return nn.L2Penalty(g, lambda, weights)
}
