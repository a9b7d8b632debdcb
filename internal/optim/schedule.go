package optim

// Schedule maps a pass index to a learning rate given the total number of
// passes. Schedules must be pure and monotonically non-increasing in pass,
// so repeated runs produce identical trajectories.
type Schedule func(pass, total int) float64

// Constant returns a schedule that always yields lr.
func Constant(lr float64) Schedule {
	return func(int, int) float64 { return lr }
}

// LinearDecay interpolates from initial at pass 0 toward final across the
// run. A final above initial is clamped to initial so the schedule never
// increases.
func LinearDecay(initial, final float64) Schedule {
	if final > initial {
		final = initial
	}
	return func(pass, total int) float64 {
		if total <= 0 {
			return initial
		}
		return initial - (initial-final)*float64(pass)/float64(total)
	}
}
