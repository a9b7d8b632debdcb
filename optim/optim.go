// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers and learning-rate
// schedules.
//
// Example:
//
//	opt := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{
//	    Passes:   50,
//	    Schedule: optim.LinearDecay(0.03, 0.01),
//	})
package optim

import (
	"github.com/gradix-ml/gradix/internal/engine"
	"github.com/gradix-ml/gradix/internal/optim"
)

// Optimizer is the base interface for parameter update strategies.
type Optimizer = optim.Optimizer

// SGD implements plain gradient descent over parameter handles.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// Schedule maps a pass index to a learning rate.
type Schedule = optim.Schedule

// NewSGD creates an SGD optimizer over the given parameter handles.
func NewSGD(g *engine.Graph, params []engine.Value, config SGDConfig) *SGD {
	return optim.NewSGD(g, params, config)
}

// Constant returns a schedule that always yields lr.
func Constant(lr float64) Schedule {
	return optim.Constant(lr)
}

// LinearDecay interpolates from initial at pass 0 toward final across the run.
func LinearDecay(initial, final float64) Schedule {
	return optim.LinearDecay(initial, final)
}
