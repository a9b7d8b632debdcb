// Package train runs forward/backward/update passes over a dataset and
// reports per-pass observables to the caller.
//
// Execution is single-threaded and strictly sequential: each pass builds a
// fresh transient graph on top of the model's frozen parameters, runs one
// backward pass, updates parameters, and either completes or fails. The
// caller decides whether a failed pass aborts the run.
package train

import (
	"github.com/pkg/errors"

	"github.com/gradix-ml/gradix/internal/dataset"
	"github.com/gradix-ml/gradix/internal/engine"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/optim"
)

// Report carries the observable values of one completed pass.
type Report struct {
	Pass        int
	LR          float64
	Loss        float64 // mean raw loss over the dataset
	Reg         float64 // L2 penalty term
	TotalLoss   float64 // Loss + Reg, the node Backward ran on
	Predictions []float64 // per-sample model outputs from this pass
}

// Config controls a training run.
type Config struct {
	Passes int
	Lambda float64      // L2 strength; zero disables the penalty exactly
	Loss   nn.LossFunc  // defaults to nn.MSE
	OnPass func(Report) // optional per-pass observer
}

// Run trains model on ds for cfg.Passes passes, updating parameters through
// opt. The model's parameters must already be frozen on g (NewMLP does
// this). Errors surface from the pass that produced them.
func Run(g *engine.Graph, model *nn.MLP, ds *dataset.Dataset, opt optim.Optimizer, cfg Config) error {
	if cfg.Loss == nil {
		cfg.Loss = nn.MSE
	}
	if ds.Len() == 0 {
		return errors.Wrap(dataset.ErrInsufficientData, "train")
	}

	for pass := 0; pass < cfg.Passes; pass++ {
		g.Reset()
		opt.ZeroGrad()

		preds := make([]float64, ds.Len())
		sum := g.Leaf(0)
		for i := 0; i < ds.Len(); i++ {
			xs, label := ds.Sample(i)
			outs, err := model.Forward(nn.Inputs(g, xs))
			if err != nil {
				return errors.Wrapf(err, "pass %d, sample %d", pass, i)
			}
			if len(outs) != 1 {
				return errors.Wrapf(nn.ErrDimensionMismatch,
					"model emits %d outputs, scalar loss needs 1", len(outs))
			}
			preds[i] = g.Data(outs[0])
			sum = g.Add(sum, cfg.Loss(g, outs[0], label))
		}

		loss := g.Mul(sum, g.Leaf(1/float64(ds.Len())))
		reg := nn.L2Penalty(g, cfg.Lambda, model.WeightParameters())
		total := g.Add(loss, reg)

		if err := g.Backward(total); err != nil {
			return errors.Wrapf(err, "pass %d", pass)
		}
		opt.Step(pass)

		if cfg.OnPass != nil {
			cfg.OnPass(Report{
				Pass:        pass,
				LR:          opt.LR(pass),
				Loss:        g.Data(loss),
				Reg:         g.Data(reg),
				TotalLoss:   g.Data(total),
				Predictions: preds,
			})
		}
	}
	return nil
}
