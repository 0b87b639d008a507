package dtw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CostMatrix fills an n×n matrix with pointwise costs d(x[i], y[j]).
//
// With a nil region every cell is computed. With a region, only cells whose
// row lies in [region.Lo[j], region.Hi[j]) for column j are computed; all
// other cells are +Inf and unreachable for the recurrence.
//
// Contracts:
//   - len(x) == len(y) ≥ 1; the zero-value Distance means Square.
//   - region, when non-nil, must span exactly n columns with row ranges
//     inside [0, n].
//
// Errors: ErrEmptySequence, ErrShapeMismatch, ErrRegionShape.
//
// Complexity: O(n²) dense, O(Σ corridor width) with a region.
func CostMatrix(x, y []float64, d Distance, region *Region) (*mat.Dense, error) {
	n := len(x)
	if n == 0 || len(y) == 0 {
		return nil, ErrEmptySequence
	}
	if len(y) != n {
		return nil, ErrShapeMismatch
	}
	d = d.orDefault()

	if region == nil {
		cost := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				cost.Set(i, j, d.fn(x[i], y[j]))
			}
		}

		return cost, nil
	}

	if err := region.validate(n); err != nil {
		return nil, err
	}
	cost := newInfDense(n)
	for j := 0; j < n; j++ {
		for i := region.Lo[j]; i < region.Hi[j]; i++ {
			cost.Set(i, j, d.fn(x[i], y[j]))
		}
	}

	return cost, nil
}

// newInfDense allocates an n×n matrix with every entry +Inf.
func newInfDense(n int) *mat.Dense {
	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := range data {
		data[i] = inf
	}

	return mat.NewDense(n, n, data)
}
