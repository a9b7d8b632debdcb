package dataset

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Moons generates n points on two interleaved half-moons with Gaussian
// noise, labelled -1 (upper moon) and +1 (lower moon). Samples are shuffled
// so contiguous splits stay class-balanced. The result is deterministic
// given the generator's seed.
func Moons(n int, noise float64, rng *rand.Rand) *Dataset {
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)

	half := n / 2
	for i := 0; i < n; i++ {
		var px, py, label float64
		if i < half {
			t := math.Pi * float64(i) / float64(half)
			px, py = math.Cos(t), math.Sin(t)
			label = -1
		} else {
			t := math.Pi * float64(i-half) / float64(n-half)
			px, py = 1-math.Cos(t), 0.5-math.Sin(t)
			label = 1
		}
		x.Set(i, 0, px+rng.NormFloat64()*noise)
		x.Set(i, 1, py+rng.NormFloat64()*noise)
		y[i] = label
	}

	perm := rng.Perm(n)
	d := &Dataset{X: x, Y: y}
	return d.subset(perm)
}
