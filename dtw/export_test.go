package dtw

// Test-only bridge exposing private coarse-to-fine kernels to dtw_test
// without widening the production API.
var (
	// ReduceByBlockForTest exposes reduceByBlock for white-box tests.
	ReduceByBlockForTest = reduceByBlock

	// MultiscaleRegionForTest exposes multiscaleRegion for white-box tests.
	MultiscaleRegionForTest = multiscaleRegion
)
