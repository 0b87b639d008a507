package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/tswarp/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Exact DTW distance between two short sequences.
//	  x = [0, 1, 1]
//	  y = [2, 0, 1]
//
// With the default squared-difference cost the accumulated cost at the
// final cell is 4, so the distance is sqrt(4) = 2.
//
// Complexity: O(N²) time, O(N²) memory
func ExampleDTW() {
	x := []float64{0, 1, 1}
	y := []float64{2, 0, 1}

	res, err := dtw.DTW(x, y, dtw.Classic{}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\n", res.Distance)
	// Output:
	// distance=2.0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_path
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same sequences, but we also want the optimal warping path.
//	The backtracking is deterministic: ties prefer the diagonal move,
//	then up, then left.
func ExampleDTW_path() {
	x := []float64{0, 1, 1}
	y := []float64{2, 0, 1}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	res, err := dtw.DTW(x, y, dtw.Classic{}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\npath=%v\n", res.Distance, res.Path)
	// Output:
	// distance=2.0
	// path=[{0 0} {0 1} {1 2} {2 2}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_fast
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	FastDTW with corridor radius 1: the resolution pyramid derives a
//	corridor wide enough to recover the exact distance here.
//
// Complexity: near-linear in N for small radii
func ExampleDTW_fast() {
	x := []float64{0, 1, 1}
	y := []float64{2, 0, 1}

	res, err := dtw.DTW(x, y, dtw.Fast{Radius: 1}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\n", res.Distance)
	// Output:
	// distance=2.0
}

// ExampleDTWWithRegion demonstrates an externally supplied constraint
// region: the corridor excludes the unconstrained optimum, so the distance
// grows to sqrt(5).
func ExampleDTWWithRegion() {
	x := []float64{0, 1, 1}
	y := []float64{2, 0, 1}
	region := &dtw.Region{Lo: []int{0, 1, 1}, Hi: []int{2, 2, 3}}

	res, err := dtw.DTWWithRegion(x, y, region, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.3f\n", res.Distance)
	// Output:
	// distance=2.236
}

// ExampleSakoeChibaBand prints the per-column row ranges of a ±2 band on a
// 5×5 matrix.
func ExampleSakoeChibaBand() {
	region, err := dtw.SakoeChibaBand(5, dtw.Cells(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(region.Lo)
	fmt.Println(region.Hi)
	// Output:
	// [0 0 0 1 2]
	// [3 4 5 5 5]
}

// ExampleItakuraParallelogram prints the slope-2 parallelogram on a 5×5
// matrix.
func ExampleItakuraParallelogram() {
	region, err := dtw.ItakuraParallelogram(5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(region.Lo)
	fmt.Println(region.Hi)
	// Output:
	// [0 1 1 2 4]
	// [1 3 4 4 5]
}

// ExampleMethodByName maps the conventional method names onto typed
// variants carrying the reference defaults.
func ExampleMethodByName() {
	m, err := dtw.MethodByName("multiscale")
	fmt.Printf("%T %v\n", m, err)

	_, err = dtw.MethodByName("approximate")
	fmt.Println(err)
	// Output:
	// dtw.Multiscale <nil>
	// dtw: unknown method
}
