// Package linkage turns a hierarchical clustering merge history into a
// four-column linkage matrix: child, child, distance, subtree size.
//
// Ids below the leaf count n are original observations. Id n+i names the
// cluster created by merge i, so a merge may only reference merges that
// precede it.
package linkage

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Sumatoshi-tech/plotaid/pkg/safeconv"
)

// Matrix column indices.
const (
	ColLeft = iota
	ColRight
	ColDistance
	ColSize

	// Columns is the width of a linkage matrix.
	Columns
)

// Sentinel errors.
var (
	ErrNoLeaves          = errors.New("model has no leaves")
	ErrShapeMismatch     = errors.New("children and distances differ in length")
	ErrNegativeChild     = errors.New("negative child id")
	ErrForwardReference  = errors.New("child references a merge that is not yet computed")
	ErrMalformedMatrix   = errors.New("malformed linkage matrix")
	ErrEmptyMergeHistory = errors.New("merge history is empty")
)

// Merge is one merge record: the two child ids combined at one step.
type Merge [2]int

// Model is a fitted agglomerative clustering result.
type Model struct {
	// Children holds one merge per internal node, in construction order.
	Children []Merge
	// Distances holds the distance at which each merge happened.
	Distances []float64
	// Labels holds the flat cluster label of every original observation.
	Labels []int
}

// Leaves returns the number of original observations.
func (m Model) Leaves() int {
	return len(m.Labels)
}

// SubtreeSizes returns, for every merge, the number of original
// observations beneath it. Merges are processed in construction order; a
// child naming merge j from merge i with j >= i is rejected.
func SubtreeSizes(children []Merge, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrNoLeaves
	}

	counts := make([]float64, len(children))

	for i, merge := range children {
		var count float64

		for _, child := range merge {
			switch {
			case child < 0:
				return nil, fmt.Errorf("%w: merge %d child %d", ErrNegativeChild, i, child)
			case child < n:
				count++
			case child-n >= i:
				return nil, fmt.Errorf("%w: merge %d child %d", ErrForwardReference, i, child)
			default:
				count += counts[child-n]
			}
		}

		counts[i] = count
	}

	return counts, nil
}

// Matrix assembles the linkage matrix of a fitted model.
func Matrix(m Model) (*mat.Dense, error) {
	if len(m.Children) != len(m.Distances) {
		return nil, fmt.Errorf("%w: %d merges, %d distances", ErrShapeMismatch, len(m.Children), len(m.Distances))
	}

	if len(m.Children) == 0 {
		return nil, ErrEmptyMergeHistory
	}

	counts, err := SubtreeSizes(m.Children, m.Leaves())
	if err != nil {
		return nil, err
	}

	z := mat.NewDense(len(m.Children), Columns, nil)

	for i, merge := range m.Children {
		z.SetRow(i, []float64{float64(merge[0]), float64(merge[1]), m.Distances[i], counts[i]})
	}

	return z, nil
}

// FromRows builds a linkage matrix from rows already in
// [left, right, distance, size] form, as produced by single-linkage
// labelling of a minimum spanning tree.
func FromRows(rows [][4]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMergeHistory
	}

	z := mat.NewDense(len(rows), Columns, nil)
	for i, row := range rows {
		z.SetRow(i, row[:])
	}

	err := Validate(z)
	if err != nil {
		return nil, err
	}

	return z, nil
}

// Observations returns the number of original observations described by z.
func Observations(z mat.Matrix) int {
	rows, _ := z.Dims()

	return rows + 1
}

// Validate checks that z is a well-formed linkage matrix: four columns,
// integral child ids that only reference earlier merges, non-negative
// distances and sizes equal to the sum of the children's sizes.
func Validate(z mat.Matrix) error {
	rows, cols := z.Dims()
	if cols != Columns {
		return fmt.Errorf("%w: %d columns", ErrMalformedMatrix, cols)
	}

	n := rows + 1

	for i := range rows {
		if d := z.At(i, ColDistance); d < 0 {
			return fmt.Errorf("%w: row %d has negative distance %v", ErrMalformedMatrix, i, d)
		}

		var size float64

		for _, col := range []int{ColLeft, ColRight} {
			v := z.At(i, col)

			id, ok := safeconv.FloatToInt(v)
			if !ok || id < 0 || id-n >= i {
				return fmt.Errorf("%w: row %d has invalid child %v", ErrMalformedMatrix, i, v)
			}

			if id < n {
				size++
			} else {
				size += z.At(id-n, ColSize)
			}
		}

		if z.At(i, ColSize) != size {
			return fmt.Errorf("%w: row %d size %v, want %v", ErrMalformedMatrix, i, z.At(i, ColSize), size)
		}
	}

	return nil
}
