package dtw

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AccumulatedCostMatrix computes the minimum cumulative cost to reach each
// cell of the given cost matrix via the classic three-neighbor recurrence
//
//	acc[i][j] = cost[i][j] + min(acc[i-1][j-1], acc[i-1][j], acc[i][j-1])
//
// with missing or out-of-region predecessors treated as +Inf. The base row
// and base column accumulate by cumulative sum along the valid prefix; with
// a region both prefixes are bounded by region.Hi[0].
//
// Cells whose three predecessors are all +Inf stay +Inf and propagate
// forward: the final distance becomes non-finite, which callers must treat
// as "no valid alignment under this region" (see IsUnreachable).
//
// Contracts:
//   - cost must be square; region, when non-nil, must match its size.
//   - the fill order is strictly increasing in (i, j): no cell is computed
//     before its three predecessors.
//
// Errors: ErrNonSquare, ErrRegionShape.
//
// Complexity: O(n²) dense, O(Σ corridor width) with a region.
func AccumulatedCostMatrix(cost *mat.Dense, region *Region) (*mat.Dense, error) {
	n, c := cost.Dims()
	if n != c {
		return nil, ErrNonSquare
	}
	if region == nil {
		return accumulateDense(cost, n), nil
	}
	if err := region.validate(n); err != nil {
		return nil, err
	}

	return accumulateRegion(cost, region, n), nil
}

// accumulateDense runs the recurrence over the full matrix.
func accumulateDense(cost *mat.Dense, n int) *mat.Dense {
	acc := mat.NewDense(n, n, nil)

	// Base row: running sum of the first cost row.
	floats.CumSum(acc.RawRowView(0), cost.RawRowView(0))
	// Base column: running sum of the first cost column.
	run := 0.0
	for i := 0; i < n; i++ {
		run += cost.At(i, 0)
		acc.Set(i, 0, run)
	}

	var i, j int
	for i = 1; i < n; i++ {
		for j = 1; j < n; j++ {
			acc.Set(i, j, cost.At(i, j)+min3(
				acc.At(i-1, j-1),
				acc.At(i-1, j),
				acc.At(i, j-1),
			))
		}
	}

	return acc
}

// accumulateRegion runs the recurrence only inside the corridor; everything
// outside stays +Inf.
func accumulateRegion(cost *mat.Dense, region *Region, n int) *mat.Dense {
	acc := newInfDense(n)

	// Both base prefixes are bounded by the first column's upper row bound.
	hi0 := region.Hi[0]
	floats.CumSum(acc.RawRowView(0)[:hi0], cost.RawRowView(0)[:hi0])
	run := 0.0
	for i := 0; i < hi0; i++ {
		run += cost.At(i, 0)
		acc.Set(i, 0, run)
	}

	var i, j int
	for j = 1; j < n; j++ {
		for i = region.Lo[j]; i < region.Hi[j]; i++ {
			if i == 0 {
				// Row 0 has only the left predecessor.
				acc.Set(0, j, cost.At(0, j)+acc.At(0, j-1))
				continue
			}
			acc.Set(i, j, cost.At(i, j)+min3(
				acc.At(i-1, j-1),
				acc.At(i-1, j),
				acc.At(i, j-1),
			))
		}
	}

	return acc
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
