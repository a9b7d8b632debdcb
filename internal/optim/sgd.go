package optim

import "github.com/gradix-ml/gradix/internal/engine"

// SGD implements plain gradient descent over parameter handles:
//
//	data ← data - lr(pass) · grad
//
// A zero learning rate leaves every parameter bit-identical.
type SGD struct {
	g        *engine.Graph
	params   []engine.Value
	schedule Schedule
	passes   int
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64  // constant rate used when Schedule is nil
	Passes   int      // total passes, fed to decaying schedules (default 1)
	Schedule Schedule // overrides LR when set
}

// NewSGD creates an SGD optimizer over the given parameter handles.
func NewSGD(g *engine.Graph, params []engine.Value, config SGDConfig) *SGD {
	if config.Schedule == nil {
		config.Schedule = Constant(config.LR)
	}
	if config.Passes == 0 {
		config.Passes = 1
	}
	return &SGD{
		g:        g,
		params:   params,
		schedule: config.Schedule,
		passes:   config.Passes,
	}
}

// Step applies one gradient update to every parameter.
func (s *SGD) Step(pass int) {
	lr := s.schedule(pass, s.passes)
	for _, p := range s.params {
		s.g.SetData(p, s.g.Data(p)-lr*s.g.Grad(p))
	}
}

// ZeroGrad clears every parameter's gradient.
func (s *SGD) ZeroGrad() {
	s.g.ZeroGrad(s.params)
}

// LR returns the learning rate the schedule assigns to pass.
func (s *SGD) LR(pass int) float64 {
	return s.schedule(pass, s.passes)
}
