// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs training passes over a dataset and reports per-pass
// observables to the caller.
package train

import (
	"github.com/gradix-ml/gradix/internal/dataset"
	"github.com/gradix-ml/gradix/internal/engine"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/optim"
	"github.com/gradix-ml/gradix/internal/train"
)

// Report carries the observable values of one completed pass.
type Report = train.Report

// Config controls a training run.
type Config = train.Config

// Run trains model on ds for cfg.Passes passes, updating parameters
// through opt.
func Run(g *engine.Graph, model *nn.MLP, ds *dataset.Dataset, opt optim.Optimizer, cfg Config) error {
	return train.Run(g, model, ds, opt, cfg)
}
