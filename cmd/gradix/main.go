// Command gradix trains a tiny feed-forward network on the two-moons
// dataset, selecting the L2 regularization strength by cross-validation
// before the final training run.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/gradix-ml/gradix/dataset"
	"github.com/gradix-ml/gradix/engine"
	"github.com/gradix-ml/gradix/nn"
	"github.com/gradix-ml/gradix/optim"
	"github.com/gradix-ml/gradix/train"
	"github.com/gradix-ml/gradix/xval"
)

func main() {
	var (
		samples     = flag.Int("samples", 100, "number of two-moons samples")
		noise       = flag.Float64("noise", 0.1, "gaussian noise added to the moons")
		seed        = flag.Int64("seed", 42, "seed for data and parameter initialization")
		archFlag    = flag.String("arch", "5,5,1", "layer widths, final layer included")
		actFlag     = flag.String("activation", "relu", "hidden-layer activation: none, tanh or relu")
		passes      = flag.Int("passes", 50, "passes for the final training run")
		folds       = flag.Int("folds", 10, "cross-validation folds")
		cvPasses    = flag.Int("cv-passes", 10, "training passes per cross-validation fold")
		lambdaStart = flag.Float64("lambda-start", 0, "first L2 lambda candidate")
		lambdaEnd   = flag.Float64("lambda-end", 0.01, "last L2 lambda candidate")
		lambdaStep  = flag.Float64("lambda-step", 0.0005, "increment between candidates")
		lr          = flag.Float64("lr", 0.03, "initial learning rate")
		lrFinal     = flag.Float64("lr-final", 0.01, "learning rate at the last pass")
	)
	flag.Parse()

	arch, err := parseArch(*archFlag)
	if err != nil {
		fatal(err)
	}
	act, err := nn.ParseActivation(*actFlag)
	if err != nil {
		fatal(err)
	}

	ds := dataset.Moons(*samples, *noise, rand.New(rand.NewSource(*seed)))
	schedule := optim.LinearDecay(*lr, *lrFinal)

	fmt.Printf("==> searching for the best L2 lambda in [%g, %g], step %g\n",
		*lambdaStart, *lambdaEnd, *lambdaStep)
	cv := xval.New(xval.Config{
		Inputs:     2,
		Arch:       arch,
		Activation: act,
		Folds:      *folds,
		Passes:     *cvPasses,
		Schedule:   schedule,
		Seed:       *seed,
	})
	res, err := cv.Search(ds, xval.Range{Start: *lambdaStart, End: *lambdaEnd, Step: *lambdaStep})
	if err != nil {
		fatal(err)
	}
	for _, s := range res.Scores {
		fmt.Printf("lambda=%.4f, accuracy=%.0f%%\n", s.Lambda, s.Accuracy*100)
	}
	fmt.Printf("==> selected lambda=%.4f\n\n", res.Lambda)

	fmt.Println("==> training the final model...")
	g := engine.New()
	model := nn.NewMLP(g, 2, arch, act, rand.New(rand.NewSource(*seed)))
	opt := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{
		Passes:   *passes,
		Schedule: schedule,
	})
	err = train.Run(g, model, ds, opt, train.Config{
		Passes: *passes,
		Lambda: res.Lambda,
		OnPass: func(r train.Report) {
			fmt.Printf("pass=%d, alpha=%.6f, loss=%.6f, reg=%.6f, tot_loss=%.6f\n",
				r.Pass, r.LR, r.Loss, r.Reg, r.TotalLoss)
		},
	})
	if err != nil {
		fatal(err)
	}
	fmt.Println("==> done")
}

// parseArch parses a comma-separated list of layer widths.
func parseArch(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	arch := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid layer width %q", f)
		}
		arch[i] = n
	}
	return arch, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gradix:", err)
	os.Exit(1)
}
