package dtw

import "math"

// DistanceFunc is an elementary pointwise cost between two scalar samples.
// It should return a non-negative number; this is not enforced.
type DistanceFunc func(a, b float64) float64

// Distance selects the pointwise cost used to fill the cost matrix.
// The zero value behaves like Square.
type Distance struct {
	fn     DistanceFunc
	square bool
}

// Square is the squared-difference cost (a-b)². It is the default, and the
// only distance whose final DTW value is square-rooted, yielding a
// Euclidean-like distance.
var Square = Distance{fn: squareDiff, square: true}

// Absolute is the absolute-difference cost |a-b|. The final DTW value is the
// raw accumulated cost.
var Absolute = Distance{fn: absoluteDiff}

// NewDistance wraps a custom pointwise cost. The function is validated by a
// single probe call fn(1, 1): a panic or a non-finite result yields
// ErrBadDistance. Custom distances are returned as raw accumulated cost
// (no square root).
func NewDistance(fn DistanceFunc) (d Distance, err error) {
	if fn == nil {
		return Distance{}, ErrBadDistance
	}
	defer func() {
		if recover() != nil {
			d, err = Distance{}, ErrBadDistance
		}
	}()
	if v := fn(1, 1); math.IsNaN(v) || math.IsInf(v, 0) {
		return Distance{}, ErrBadDistance
	}

	return Distance{fn: fn}, nil
}

// orDefault substitutes Square for the zero value.
func (d Distance) orDefault() Distance {
	if d.fn == nil {
		return Square
	}

	return d
}

// squareDiff returns the squared difference of a and b.
func squareDiff(a, b float64) float64 {
	diff := a - b

	return diff * diff
}

// absoluteDiff returns the absolute difference of a and b.
func absoluteDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
