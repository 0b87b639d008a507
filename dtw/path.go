package dtw

import "gonum.org/v1/gonum/mat"

// ReconstructPath backtracks through a completed accumulated cost matrix
// from (n-1, n-1) to (0, 0) and returns the optimal warping path in forward
// order.
//
// At each step: if i == 0 the only move is left, if j == 0 the only move is
// up; otherwise the predecessor with the smallest accumulated cost wins,
// with ties broken in the fixed order diagonal, up, left. The tie-break is
// part of the contract: it makes the path deterministic and reproducible
// across implementations.
//
// Complexity: O(path length) ≤ O(2n).
func ReconstructPath(acc *mat.Dense) Path {
	n, _ := acc.Dims()
	if n == 0 {
		return nil
	}

	path := make(Path, 0, 2*n-1)
	i, j := n-1, n-1
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			diag := acc.At(i-1, j-1)
			up := acc.At(i-1, j)
			left := acc.At(i, j-1)
			switch {
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}

	// Reverse in place to forward (origin-to-end) order.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
