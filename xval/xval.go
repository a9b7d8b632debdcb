// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package xval selects regularization hyperparameters by k-fold
// cross-validation.
package xval

import "github.com/gradix-ml/gradix/internal/xval"

// CrossValidator sweeps L2 lambda candidates and picks the one with the
// best held-out accuracy.
type CrossValidator = xval.CrossValidator

// Config describes the model and training regime used to score candidates.
type Config = xval.Config

// Range describes a hyperparameter sweep.
type Range = xval.Range

// Score is one candidate's held-out result.
type Score = xval.Score

// Result is the outcome of a search.
type Result = xval.Result

// New creates a CrossValidator, applying defaults for unset fields.
func New(cfg Config) *CrossValidator {
	return xval.New(cfg)
}
