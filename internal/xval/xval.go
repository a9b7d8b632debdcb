// Package xval selects the L2 regularization strength by k-fold
// cross-validation over a range of candidates.
//
// Every candidate trains a freshly initialized model per fold, always from
// the same seed, so candidates differ only in the hyperparameter and the
// selection is reproducible. Candidates are independent of one another and
// run sequentially.
package xval

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/gradix-ml/gradix/internal/dataset"
	"github.com/gradix-ml/gradix/internal/engine"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/optim"
	"github.com/gradix-ml/gradix/internal/train"
)

// Config describes the model and training regime used to score candidates.
type Config struct {
	Inputs     int
	Arch       []int
	Activation nn.Activation
	Folds      int            // number of cross-validation folds (default 10)
	Passes     int            // training passes per fold (default 10)
	Schedule   optim.Schedule // defaults to optim.LinearDecay(0.03, 0.01)
	Loss       nn.LossFunc    // defaults to nn.MSE
	Seed       int64          // seed for parameter initialization
}

// Score is one candidate's held-out result.
type Score struct {
	Lambda   float64
	Accuracy float64
}

// Result is the outcome of a search: the winning lambda plus every
// candidate's score in evaluation order.
type Result struct {
	Lambda   float64
	Accuracy float64
	Scores   []Score
}

// CrossValidator sweeps L2 lambda candidates and picks the one with the
// best held-out accuracy.
type CrossValidator struct {
	cfg Config
}

// New creates a CrossValidator, applying defaults for unset fields.
func New(cfg Config) *CrossValidator {
	if cfg.Folds == 0 {
		cfg.Folds = 10
	}
	if cfg.Passes == 0 {
		cfg.Passes = 10
	}
	if cfg.Schedule == nil {
		cfg.Schedule = optim.LinearDecay(0.03, 0.01)
	}
	if cfg.Loss == nil {
		cfg.Loss = nn.MSE
	}
	return &CrossValidator{cfg: cfg}
}

// Search evaluates every candidate in r in ascending order and returns the
// one with the maximal mean holdout accuracy. Ties keep the earlier (lower)
// lambda, so selection is deterministic.
func (cv *CrossValidator) Search(ds *dataset.Dataset, r Range) (Result, error) {
	folds, err := ds.Folds(cv.cfg.Folds)
	if err != nil {
		return Result{}, errors.Wrap(err, "cross-validation")
	}

	res := Result{Accuracy: -1}
	for _, lambda := range r.Values() {
		acc, err := cv.score(folds, lambda)
		if err != nil {
			return Result{}, errors.Wrapf(err, "candidate lambda=%g", lambda)
		}
		res.Scores = append(res.Scores, Score{Lambda: lambda, Accuracy: acc})
		if acc > res.Accuracy {
			res.Accuracy = acc
			res.Lambda = lambda
		}
	}
	return res, nil
}

// score trains and evaluates one candidate across all folds and returns the
// mean holdout accuracy.
func (cv *CrossValidator) score(folds []*dataset.Dataset, lambda float64) (float64, error) {
	accs := make([]float64, len(folds))
	for i := range folds {
		holdout := folds[i]
		training := dataset.Concat(append(append([]*dataset.Dataset{}, folds[:i]...), folds[i+1:]...))

		g := engine.NewGraph()
		rng := rand.New(rand.NewSource(cv.cfg.Seed))
		model := nn.NewMLP(g, cv.cfg.Inputs, cv.cfg.Arch, cv.cfg.Activation, rng)
		opt := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{
			Passes:   cv.cfg.Passes,
			Schedule: cv.cfg.Schedule,
		})

		err := train.Run(g, model, training, opt, train.Config{
			Passes: cv.cfg.Passes,
			Lambda: lambda,
			Loss:   cv.cfg.Loss,
		})
		if err != nil {
			return 0, err
		}

		acc, err := accuracy(g, model, holdout)
		if err != nil {
			return 0, err
		}
		accs[i] = acc
	}
	return floats.Sum(accs) / float64(len(accs)), nil
}

// accuracy scores sign agreement between predictions and ±1 labels.
func accuracy(g *engine.Graph, model *nn.MLP, ds *dataset.Dataset) (float64, error) {
	g.Reset()
	hits := make([]float64, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		xs, label := ds.Sample(i)
		outs, err := model.Forward(nn.Inputs(g, xs))
		if err != nil {
			return 0, errors.Wrapf(err, "holdout sample %d", i)
		}
		if (g.Data(outs[0]) > 0) == (label > 0) {
			hits[i] = 1
		}
	}
	return floats.Sum(hits) / float64(len(hits)), nil
}
