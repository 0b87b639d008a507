package dtw

import "math"

// SakoeChibaBand builds the fixed-width diagonal corridor: for column j the
// valid row range is [max(0, j-w), min(n, j+w+1)), where w is the window
// resolved to an absolute cell count.
//
// Contracts:
//   - n ≥ 2.
//   - Cells(w): 0 ≤ w ≤ n-1. Fraction(f): 0 ≤ f ≤ 1, w = ceil(f·(n-1)).
//
// Errors: ErrTooShort, ErrBadWindow.
//
// Complexity: O(n) time, O(n) space.
func SakoeChibaBand(n int, window Window) (*Region, error) {
	if n < 2 {
		return nil, ErrTooShort
	}
	w, err := window.resolve(n)
	if err != nil {
		return nil, err
	}

	lo := make([]int, n)
	hi := make([]int, n)
	for j := 0; j < n; j++ {
		lo[j] = max(0, j-w)
		hi[j] = min(n, j+w+1)
	}

	return &Region{Lo: lo, Hi: hi}, nil
}

// ItakuraParallelogram builds the slope-bounded corridor for a maximum slope
// s ≥ 1 (minimum slope 1/s). For each column the lower bound is the ceiling
// of the max of the two linear bounds anchored at the corners, the upper
// bound the floor+1 of the min of the two complementary bounds. Every bound
// is rounded to 2 decimals before the ceiling/floor step so that exact
// corner values do not flicker across the integer boundary.
//
// With maxSlope == 1 the corridor degenerates to exactly the diagonal.
//
// Errors: ErrTooShort, ErrBadSlope.
//
// Complexity: O(n) time, O(n) space.
func ItakuraParallelogram(n int, maxSlope float64) (*Region, error) {
	if n < 2 {
		return nil, ErrTooShort
	}
	if maxSlope < 1 {
		return nil, ErrBadSlope
	}

	minSlope := 1 / maxSlope
	last := float64(n - 1)
	lo := make([]int, n)
	hi := make([]int, n)
	var t, lower, upper float64
	for j := 0; j < n; j++ {
		t = float64(j)
		lower = math.Max(round2(minSlope*t), round2((1-maxSlope)*last+maxSlope*t))
		upper = math.Min(round2(maxSlope*t), round2((1-minSlope)*last+minSlope*t))
		lo[j] = int(math.Ceil(lower))
		hi[j] = int(math.Floor(upper + 1))
	}

	return &Region{Lo: lo, Hi: hi}, nil
}

// round2 rounds v to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
