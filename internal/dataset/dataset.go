// Package dataset provides the toy datasets and deterministic split
// operations used to train and cross-validate models.
package dataset

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	// ErrInsufficientData is returned when a dataset cannot be split into
	// the requested non-empty partitions.
	ErrInsufficientData = errors.New("dataset cannot be split into non-empty partitions")
)

// Dataset is an ordered set of (input vector, label) pairs. Inputs are the
// rows of X; labels are ±1.
type Dataset struct {
	X *mat.Dense
	Y []float64
}

// New wraps an input matrix and its labels. The label count must match the
// row count of X.
func New(x *mat.Dense, y []float64) (*Dataset, error) {
	rows, _ := x.Dims()
	if rows != len(y) {
		return nil, errors.Errorf("dataset: %d input rows but %d labels", rows, len(y))
	}
	return &Dataset{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	rows, _ := d.X.Dims()
	return rows
}

// Sample returns the i-th input vector and its label.
func (d *Dataset) Sample(i int) ([]float64, float64) {
	return mat.Row(nil, i, d.X), d.Y[i]
}

// subset copies the given rows into a new dataset.
func (d *Dataset) subset(rows []int) *Dataset {
	_, cols := d.X.Dims()
	x := mat.NewDense(len(rows), cols, nil)
	y := make([]float64, len(rows))
	for i, r := range rows {
		x.SetRow(i, mat.Row(nil, r, d.X))
		y[i] = d.Y[r]
	}
	return &Dataset{X: x, Y: y}
}

// Split partitions the dataset into disjoint train and validation sets,
// with frac of the samples (rounded down) in the training set. Returns
// ErrInsufficientData when either side would be empty.
func (d *Dataset) Split(frac float64) (train, valid *Dataset, err error) {
	n := d.Len()
	cut := int(frac * float64(n))
	if cut <= 0 || cut >= n {
		return nil, nil, errors.Wrapf(ErrInsufficientData,
			"split %d samples at fraction %g", n, frac)
	}
	trainRows := make([]int, cut)
	validRows := make([]int, n-cut)
	for i := range trainRows {
		trainRows[i] = i
	}
	for i := range validRows {
		validRows[i] = cut + i
	}
	return d.subset(trainRows), d.subset(validRows), nil
}

// Folds partitions the dataset into k contiguous groups of equal size
// (trailing samples beyond size·k are dropped). Returns
// ErrInsufficientData when k non-empty groups cannot be formed.
func (d *Dataset) Folds(k int) ([]*Dataset, error) {
	if k < 2 || d.Len() < k {
		return nil, errors.Wrapf(ErrInsufficientData,
			"%d samples into %d folds", d.Len(), k)
	}
	size := d.Len() / k
	folds := make([]*Dataset, k)
	for i := range folds {
		rows := make([]int, size)
		for j := range rows {
			rows[j] = i*size + j
		}
		folds[i] = d.subset(rows)
	}
	return folds, nil
}

// Concat joins datasets in order into a single dataset.
func Concat(parts []*Dataset) *Dataset {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	_, cols := parts[0].X.Dims()
	x := mat.NewDense(total, cols, nil)
	y := make([]float64, 0, total)
	row := 0
	for _, p := range parts {
		for i := 0; i < p.Len(); i++ {
			x.SetRow(row, mat.Row(nil, i, p.X))
			row++
		}
		y = append(y, p.Y...)
	}
	return &Dataset{X: x, Y: y}
}
