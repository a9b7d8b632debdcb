// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides toy datasets and deterministic split operations.
package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/gradix-ml/gradix/internal/dataset"
)

// Dataset is an ordered set of (input vector, label) pairs.
type Dataset = dataset.Dataset

// ErrInsufficientData is returned when a dataset cannot be split into the
// requested non-empty partitions.
var ErrInsufficientData = dataset.ErrInsufficientData

// New wraps an input matrix and its labels.
func New(x *mat.Dense, y []float64) (*Dataset, error) {
	return dataset.New(x, y)
}

// Moons generates n points on two interleaved half-moons with Gaussian
// noise, labelled ±1.
func Moons(n int, noise float64, rng *rand.Rand) *Dataset {
	return dataset.Moons(n, noise, rng)
}

// Concat joins datasets in order into a single dataset.
func Concat(parts []*Dataset) *Dataset {
	return dataset.Concat(parts)
}
