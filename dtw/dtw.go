// Package dtw - unified dispatcher for Dynamic Time Warping variants.
//
// This file provides the canonical entry points:
//
//   - DTW: validate the inputs, let the chosen Method build its constraint
//     region, then run cost matrix → accumulated cost matrix → distance,
//     optionally reconstructing the warping path.
//   - DTWWithRegion: the same pipeline under an externally supplied region.
//
// Design principles:
//   - Deterministic: fixed tie-break order in the backtracking; no
//     randomness anywhere.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Pure: inputs are never mutated; matrices, regions and paths are
//     produced fresh per call with no shared state.
package dtw

import "math"

// DTW computes the Dynamic Time Warping distance between x and y under the
// given method.
//
// Contracts:
//   - x and y must be non-empty and of equal length (the constrained
//     methods additionally require n ≥ 2).
//   - a nil method means Classic; nil opts mean DefaultOptions().
//
// The distance is the accumulated cost at (n-1, n-1), square-rooted when
// opts.Distance is Square. A constrained search that disconnects start from
// end yields +Inf (check with IsUnreachable), not an error.
//
// Errors: ErrEmptySequence, ErrShapeMismatch, plus the chosen method's
// option sentinels (ErrBadWindow, ErrBadSlope, ErrBadResolution,
// ErrBadRadius, ErrTooShort).
//
// Complexity: O(n²) unconstrained; O(n·w) banded; near-linear for the
// pyramid methods with small radii.
func DTW(x, y []float64, method Method, opts *Options) (Result, error) {
	o := normalizeOptions(opts)
	if err := checkInput(x, y); err != nil {
		return Result{}, err
	}
	if method == nil {
		method = Classic{}
	}

	region, err := method.region(x, y, o.Distance)
	if err != nil {
		return Result{}, err
	}

	return run(x, y, region, o)
}

// DTWWithRegion computes the DTW distance under an externally supplied
// constraint region. A nil region is equivalent to Classic.
//
// The region's shape is validated (one row range per timestamp, ranges
// inside [0, n]) but its connectivity is not: a region that disconnects
// (0,0) from (n-1,n-1) yields a +Inf distance.
//
// Errors: ErrEmptySequence, ErrShapeMismatch, ErrRegionShape.
func DTWWithRegion(x, y []float64, region *Region, opts *Options) (Result, error) {
	o := normalizeOptions(opts)
	if err := checkInput(x, y); err != nil {
		return Result{}, err
	}

	return run(x, y, region, o)
}

// checkInput enforces the shared sequence contract.
func checkInput(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptySequence
	}
	if len(x) != len(y) {
		return ErrShapeMismatch
	}

	return nil
}

// normalizeOptions copies opts, substituting defaults for nil and for the
// zero-value distance.
func normalizeOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	o.Distance = o.Distance.orDefault()

	return o
}

// run executes the shared pipeline: cost matrix → accumulated cost matrix →
// distance, attaching the intermediates the caller asked for.
func run(x, y []float64, region *Region, o Options) (Result, error) {
	cost, err := CostMatrix(x, y, o.Distance, region)
	if err != nil {
		return Result{}, err
	}
	acc, err := AccumulatedCostMatrix(cost, region)
	if err != nil {
		return Result{}, err
	}

	n := len(x)
	dist := acc.At(n-1, n-1)
	if o.Distance.square {
		dist = math.Sqrt(dist)
	}

	res := Result{Distance: dist}
	if o.ReturnCost {
		res.Cost = cost
	}
	if o.ReturnAccumulated {
		res.Accumulated = acc
	}
	if o.ReturnPath {
		res.Path = ReconstructPath(acc)
	}

	return res, nil
}
