package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// This file implements the coarse-to-fine machinery shared by the
// Multiscale and Fast methods: block-mean sequence reduction, projection of
// a coarse optimal path into a dilated full-resolution corridor, and the
// resolution-halving pyramid.

// reduceByBlock averages non-overlapping blocks of the given size. A partial
// tail block is padded by repeating the last element before averaging.
func reduceByBlock(seq []float64, block int) []float64 {
	n := len(seq)
	reduced := make([]float64, 0, ceilDiv(n, block))
	var sum float64
	for start := 0; start < n; start += block {
		end := start + block
		if end <= n {
			sum = floats.Sum(seq[start:end])
		} else {
			sum = floats.Sum(seq[start:]) + float64(end-n)*seq[n-1]
		}
		reduced = append(reduced, sum/float64(block))
	}

	return reduced
}

// coarsePath solves DTW at a reduced resolution: both sequences are
// block-mean reduced, the pipeline runs under the carried region (nil on the
// coarsest level), and the optimal path plus the reduced length come back.
func coarsePath(x, y []float64, d Distance, block int, region *Region) (Path, int, error) {
	xr := reduceByBlock(x, block)
	yr := reduceByBlock(y, block)

	cost, err := CostMatrix(xr, yr, d, region)
	if err != nil {
		return nil, 0, err
	}
	acc, err := AccumulatedCostMatrix(cost, region)
	if err != nil {
		return nil, 0, err
	}

	return ReconstructPath(acc), len(xr), nil
}

// multiscaleRegion projects a coarse-resolution optimal path back to a
// full-resolution corridor of n columns. Every path cell is dilated by
// 1..radius cells up, down, left and right (clipped to the coarse grid),
// each coarse column keeps the min/max of the covered row values scaled by
// the resolution factor, and the per-coarse-column range is replicated
// across its factor full-resolution columns, clipped to [0, n].
func multiscaleRegion(n, factor, nReduced int, path Path, radius int) *Region {
	minRow := make([]int, nReduced)
	maxRow := make([]int, nReduced)
	for b := range minRow {
		minRow[b] = math.MaxInt
		maxRow[b] = -1
	}
	cover := func(i, j int) {
		i = clampInt(i, 0, nReduced-1)
		j = clampInt(j, 0, nReduced-1)
		if j < minRow[i] {
			minRow[i] = j
		}
		if j > maxRow[i] {
			maxRow[i] = j
		}
	}

	var c Coord
	var r int
	for _, c = range path {
		cover(c.I, c.J)
		for r = 1; r <= radius; r++ {
			cover(c.I+r, c.J)
			cover(c.I-r, c.J)
			cover(c.I, c.J-r)
			cover(c.I, c.J+r)
		}
	}

	lo := make([]int, n)
	hi := make([]int, n)
	for j := 0; j < n; j++ {
		b := j / factor
		lo[j] = clampInt(minRow[b]*factor, 0, n)
		hi[j] = clampInt((maxRow[b]+1)*factor, 0, n)
	}

	return &Region{Lo: lo, Hi: hi}
}

// multiscaleRegionFor derives the one-shot multiscale corridor: solve DTW at
// 1/resolution scale, then project and dilate the coarse path. A resolution
// of 1 means no reduction and therefore no constraint.
func multiscaleRegionFor(x, y []float64, d Distance, resolution, radius int) (*Region, error) {
	if resolution == 1 {
		return nil, nil
	}

	path, nReduced, err := coarsePath(x, y, d, resolution, nil)
	if err != nil {
		return nil, err
	}

	return multiscaleRegion(len(x), resolution, nReduced, path, radius), nil
}

// fastRegionFor derives the FastDTW corridor through a resolution pyramid.
// Starting from minSize = radius+2 it performs k = ceil(log2(n/minSize))
// halving steps: at each level the sequences are reduced by blocks of 2^i,
// DTW runs under the region carried from the coarser level, and the optimal
// path is expanded with resolution factor 2 to seed the next finer level.
// The loop threads its state explicitly through the carried region.
//
// If n ≤ minSize there is nothing to recurse on and the search stays
// unconstrained (nil region). The corridor width is governed by radius
// independently of n, which keeps total work across the pyramid near-linear.
func fastRegionFor(x, y []float64, d Distance, radius int) (*Region, error) {
	n := len(x)
	minSize := radius + 2
	if n <= minSize {
		return nil, nil
	}

	steps := int(math.Ceil(math.Log2(float64(n) / float64(minSize))))
	var (
		region   *Region
		path     Path
		nReduced int
		err      error
	)
	for i := steps; i >= 1; i-- {
		block := 1 << i
		path, nReduced, err = coarsePath(x, y, d, block, region)
		if err != nil {
			return nil, err
		}
		// The next finer level has ceil(2n/block) timestamps.
		region = multiscaleRegion(ceilDiv(2*n, block), 2, nReduced, path, radius)
	}

	return region, nil
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// clampInt clips v to the inclusive range [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
