package train_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/dataset"
	"github.com/gradix-ml/gradix/engine"
	"github.com/gradix-ml/gradix/nn"
	"github.com/gradix-ml/gradix/optim"
	"github.com/gradix-ml/gradix/train"
	"github.com/gradix-ml/gradix/xval"
)

// End-to-end smoke test over the public API: generate moons, pick a lambda
// by cross-validation, then run a full training session.
func TestMoonsPipeline(t *testing.T) {
	const seed = 42
	ds := dataset.Moons(40, 0.1, rand.New(rand.NewSource(seed)))

	cv := xval.New(xval.Config{
		Inputs:     2,
		Arch:       []int{5, 1},
		Activation: nn.ReLU,
		Folds:      4,
		Passes:     5,
		Seed:       seed,
	})
	res, err := cv.Search(ds, xval.Range{Start: 0, End: 0.001, Step: 0.0005})
	require.NoError(t, err)
	require.Len(t, res.Scores, 3)
	assert.GreaterOrEqual(t, res.Accuracy, 0.0)
	assert.LessOrEqual(t, res.Accuracy, 1.0)

	g := engine.New()
	model := nn.NewMLP(g, 2, []int{5, 1}, nn.ReLU, rand.New(rand.NewSource(seed)))
	opt := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{
		Passes:   30,
		Schedule: optim.LinearDecay(0.03, 0.01),
	})

	var reports []train.Report
	err = train.Run(g, model, ds, opt, train.Config{
		Passes: 30,
		Lambda: res.Lambda,
		OnPass: func(r train.Report) { reports = append(reports, r) },
	})
	require.NoError(t, err)
	require.Len(t, reports, 30)
	assert.Less(t, reports[len(reports)-1].TotalLoss, reports[0].TotalLoss)
}
