// Package optim implements gradient-descent parameter updates and the
// learning-rate schedules that drive them.
//
// Example usage:
//
//	opt := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{
//	    Passes:   50,
//	    Schedule: optim.LinearDecay(0.03, 0.01),
//	})
//
//	for pass := 0; pass < 50; pass++ {
//	    g.Reset()
//	    opt.ZeroGrad()
//	    // ... forward, build loss ...
//	    if err := g.Backward(loss); err != nil {
//	        return err
//	    }
//	    opt.Step(pass)
//	}
package optim

// Optimizer is the base interface for parameter update strategies.
type Optimizer interface {
	// Step applies one gradient update to all parameters, using the
	// learning rate the schedule assigns to this pass index.
	Step(pass int)

	// ZeroGrad clears all parameter gradients. Gradients accumulate
	// additively across backward passes, so this must run between passes.
	ZeroGrad()

	// LR returns the learning rate used for the given pass.
	LR(pass int) float64
}
