// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Variable is a named-dimension dense numeric array of rank 1 or 2,
// stored row-major in a flat slice for cache friendliness.
//
// Rank-1 variables (a single covariate, a single trait) carry one dimension
// name; rank-2 variables (a dosage matrix, a multi-trait outcome) carry two.
// The backing slice is owned by the Variable after construction.
type Variable struct {
	dims  []string  // one name per axis, len == rank
	shape []int     // positive extents, len == rank
	data  []float64 // flat backing storage, row-major, len == product(shape)
}

// NewVariable builds a Variable from dimension names, extents and data.
// Stage 1 (Validate): rank ∈ {1, 2}, dims/shape aligned, positive extents.
// Stage 2 (Validate): len(data) equals the product of the extents.
// Stage 3 (Finalize): take ownership of data, no copy.
// Complexity: O(1) beyond validation.
func NewVariable(dims []string, shape []int, data []float64) (*Variable, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("NewVariable: %d dims vs %d extents: %w", len(dims), len(shape), ErrBadShape)
	}
	if len(shape) < 1 || len(shape) > 2 {
		return nil, fmt.Errorf("NewVariable: rank %d: %w", len(shape), ErrBadRank)
	}
	size := 1
	for _, ext := range shape {
		if ext <= 0 {
			return nil, fmt.Errorf("NewVariable: extent %d: %w", ext, ErrBadShape)
		}
		size *= ext
	}
	if len(data) != size {
		return nil, fmt.Errorf("NewVariable: %d values for shape %v: %w", len(data), shape, ErrShapeData)
	}

	return &Variable{
		dims:  append([]string(nil), dims...),
		shape: append([]int(nil), shape...),
		data:  data,
	}, nil
}

// MustVariable is NewVariable that panics on error; for literals in tests
// and examples where the shapes are constants.
func MustVariable(dims []string, shape []int, data []float64) *Variable {
	v, err := NewVariable(dims, shape, data)
	if err != nil {
		panic(err)
	}

	return v
}

// Rank returns the number of axes (1 or 2).
func (v *Variable) Rank() int { return len(v.shape) }

// Dims returns a copy of the axis names.
func (v *Variable) Dims() []string { return append([]string(nil), v.dims...) }

// Shape returns a copy of the axis extents.
func (v *Variable) Shape() []int { return append([]int(nil), v.shape...) }

// Len returns the total number of stored values.
func (v *Variable) Len() int { return len(v.data) }

// At reads the element at (row, col). For rank-1 variables col must be 0.
// Complexity: O(1).
func (v *Variable) At(row, col int) (float64, error) {
	idx, err := v.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return v.data[idx], nil
}

// Set writes value x at (row, col). For rank-1 variables col must be 0.
// Complexity: O(1).
func (v *Variable) Set(row, col int, x float64) error {
	idx, err := v.indexOf(row, col)
	if err != nil {
		return err
	}
	v.data[idx] = x

	return nil
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Rank-1 variables are addressed as a single column.
func (v *Variable) indexOf(row, col int) (int, error) {
	rows, cols := v.extents()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, fmt.Errorf("Variable(%d,%d) with shape %v: %w", row, col, v.shape, ErrIndexOutOfBounds)
	}

	return row*cols + col, nil
}

// extents reports the variable as rows × cols, viewing rank-1 as one column.
func (v *Variable) extents() (rows, cols int) {
	if len(v.shape) == 1 {
		return v.shape[0], 1
	}

	return v.shape[0], v.shape[1]
}

// Matrix materializes the variable as a gonum Dense. Rank-1 variables become
// a single-column (n, 1) matrix; rank-2 variables keep their shape. The
// returned matrix owns a copy — mutating it does not touch the Variable.
// Complexity: O(len) time and space.
func (v *Variable) Matrix() *mat.Dense {
	rows, cols := v.extents()

	return mat.NewDense(rows, cols, append([]float64(nil), v.data...))
}

// Clone returns a deep copy of the variable.
func (v *Variable) Clone() *Variable {
	return &Variable{
		dims:  append([]string(nil), v.dims...),
		shape: append([]int(nil), v.shape...),
		data:  append([]float64(nil), v.data...),
	}
}
