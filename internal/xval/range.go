package xval

// Range describes a hyperparameter sweep from Start to End (inclusive,
// within floating tolerance) in increments of Step.
type Range struct {
	Start, End, Step float64
}

// Values expands the range into ascending candidates. A non-positive Step
// or an End below Start yields just Start.
func (r Range) Values() []float64 {
	if r.Step <= 0 || r.End < r.Start {
		return []float64{r.Start}
	}
	var vs []float64
	// half-step tolerance keeps End included despite accumulation error
	for v := r.Start; v <= r.End+r.Step/2; v += r.Step {
		vs = append(vs, v)
	}
	return vs
}
