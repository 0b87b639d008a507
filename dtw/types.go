// Package dtw defines the shared types, sentinel errors and option
// structures used by every Dynamic Time Warping variant.
package dtw

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the dtw package.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrShapeMismatch indicates the two input sequences differ in length.
	ErrShapeMismatch = errors.New("dtw: input sequences must have the same length")

	// ErrTooShort indicates a constrained variant was asked to run on fewer
	// than two timestamps.
	ErrTooShort = errors.New("dtw: at least two timestamps are required")

	// ErrNonSquare indicates the supplied cost matrix is not square.
	ErrNonSquare = errors.New("dtw: cost matrix must be square")

	// ErrRegionShape indicates a constraint region whose column count or row
	// ranges do not fit the matrix it is applied to.
	ErrRegionShape = errors.New("dtw: region must hold one valid row range per timestamp")

	// ErrBadWindow indicates a Sakoe-Chiba window outside its valid range.
	ErrBadWindow = errors.New("dtw: window size out of range")

	// ErrBadSlope indicates an Itakura maximum slope below 1.
	ErrBadSlope = errors.New("dtw: max slope must be at least 1")

	// ErrBadResolution indicates a non-positive multiscale resolution.
	ErrBadResolution = errors.New("dtw: resolution must be a positive integer")

	// ErrBadRadius indicates a negative corridor radius.
	ErrBadRadius = errors.New("dtw: radius must be non-negative")

	// ErrBadDistance indicates a custom distance function that failed its
	// probe call or returned a non-finite value.
	ErrBadDistance = errors.New("dtw: distance function must return a finite number")

	// ErrUnknownMethod indicates a method name outside the supported set.
	ErrUnknownMethod = errors.New("dtw: unknown method")
)

// Reference defaults applied by MethodByName.
const (
	// DefaultWindowFraction is the default Sakoe-Chiba window, expressed as a
	// fraction of n-1.
	DefaultWindowFraction = 0.1

	// DefaultMaxSlope is the default Itakura maximum slope.
	DefaultMaxSlope = 2.0

	// DefaultResolution is the default multiscale resolution level.
	DefaultResolution = 2

	// DefaultRadius is the default corridor dilation radius for the
	// multiscale and fast methods.
	DefaultRadius = 0
)

// Coord is a single cell (I, J) of the alignment matrix: I indexes the first
// sequence, J the second.
type Coord struct {
	I, J int
}

// Path is an optimal warping path in forward order: it starts at (0, 0),
// ends at (n-1, n-1), and every consecutive pair differs by exactly one of
// the three allowed moves (diagonal, up, left).
type Path []Coord

// Indices splits the path into its two parallel index sequences:
// xi holds the indices into the first sequence, yi into the second.
func (p Path) Indices() (xi, yi []int) {
	xi = make([]int, len(p))
	yi = make([]int, len(p))
	for k, c := range p {
		xi[k] = c.I
		yi[k] = c.J
	}

	return xi, yi
}

// Region is a per-column constraint on the alignment matrix: for column j,
// only rows in the half-open range [Lo[j], Hi[j]) may be computed or
// traversed. Lo and Hi must have equal length and satisfy
// 0 ≤ Lo[j] ≤ Hi[j] ≤ n for every column.
//
// Regions produced by the generators in this package are connected by
// construction. An externally supplied region is not checked for
// connectivity: if it disconnects (0,0) from (n-1,n-1), the final distance
// is +Inf (see IsUnreachable), not an error.
type Region struct {
	Lo, Hi []int
}

// columns reports the number of columns the region constrains.
func (r *Region) columns() int { return len(r.Lo) }

// validate checks the region's shape against an n×n matrix.
func (r *Region) validate(n int) error {
	if len(r.Lo) != n || len(r.Hi) != n {
		return ErrRegionShape
	}
	for j := 0; j < n; j++ {
		if r.Lo[j] < 0 || r.Hi[j] > n || r.Lo[j] > r.Hi[j] {
			return ErrRegionShape
		}
	}

	return nil
}

// Window is a Sakoe-Chiba band width: either an absolute cell count
// (Cells) or a fraction of n-1 (Fraction). The zero value is Cells(0),
// i.e. the strict diagonal.
type Window struct {
	value    float64
	fraction bool
}

// Cells returns a Window of w absolute cells above and below the diagonal.
// w must be in [0, n-1] once the band is generated.
func Cells(w int) Window { return Window{value: float64(w)} }

// Fraction returns a Window expressed as a fraction f of n-1, resolved as
// ceil(f·(n-1)). f must be in [0, 1].
func Fraction(f float64) Window { return Window{value: f, fraction: true} }

// resolve turns the window into an absolute cell count for sequences of
// length n, or ErrBadWindow if it is out of range.
func (w Window) resolve(n int) (int, error) {
	if w.fraction {
		if w.value < 0 || w.value > 1 {
			return 0, ErrBadWindow
		}

		return int(math.Ceil(w.value * float64(n-1))), nil
	}
	size := int(w.value)
	if size < 0 || size > n-1 {
		return 0, ErrBadWindow
	}

	return size, nil
}

// Options configures what a DTW call returns beside the distance.
//
// Distance          – pointwise cost; the zero value means Square.
// ReturnCost        – include the cost matrix in the result.
// ReturnAccumulated – include the accumulated cost matrix in the result.
// ReturnPath        – include the reconstructed optimal path in the result.
type Options struct {
	Distance          Distance
	ReturnCost        bool
	ReturnAccumulated bool
	ReturnPath        bool
}

// DefaultOptions returns Options with the squared-difference distance and no
// optional intermediates.
func DefaultOptions() Options {
	return Options{Distance: Square}
}

// Result holds the outcome of a DTW call. Cost, Accumulated and Path are nil
// unless requested through Options.
type Result struct {
	// Distance is the DTW distance: the accumulated cost at (n-1, n-1),
	// square-rooted when the pointwise cost is Square.
	Distance float64

	// Cost is the n×n pointwise cost matrix (entries outside the active
	// region are +Inf).
	Cost *mat.Dense

	// Accumulated is the n×n accumulated cost matrix.
	Accumulated *mat.Dense

	// Path is the optimal warping path from (0,0) to (n-1,n-1).
	Path Path
}

// IsUnreachable reports whether a distance signals that no valid alignment
// exists — typically because a supplied region disconnects the start cell
// from the end cell. Infinity propagates silently through the recurrence,
// so callers of constrained variants must check finiteness themselves.
func IsUnreachable(distance float64) bool {
	return math.IsInf(distance, 1) || math.IsNaN(distance)
}
