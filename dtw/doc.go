// Package dtw computes Dynamic Time Warping (DTW) distances between two
// equal-length numeric sequences, with optional constraint regions,
// alignment paths and coarse-to-fine approximations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative pointwise cost.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series classification, clustering & anomaly detection
//
// ✨ Key features:
//   - classic mode: exact O(N²) time & memory
//   - Sakoe–Chiba band: fixed-width diagonal corridor, O(N·w)
//   - Itakura parallelogram: slope-bounded corridor
//   - MultiscaleDTW: one-shot coarsen + dilate corridor
//   - FastDTW: recursive resolution pyramid, near-linear total work
//   - squared, absolute or custom pointwise cost (probe-validated)
//   - on-demand cost matrix, accumulated matrix and warping path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tswarp/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//
//	// exact distance
//	res, err := dtw.DTW(x, y, dtw.Classic{}, &opts)
//
//	// banded distance, window = ±10 cells
//	res, err = dtw.DTW(x, y, dtw.SakoeChiba{Window: dtw.Cells(10)}, &opts)
//
//	// near-linear approximation with corridor radius 1
//	res, err = dtw.DTW(x, y, dtw.Fast{Radius: 1}, &opts)
//
// Methods form a closed set: Classic, SakoeChiba, Itakura, Multiscale and
// Fast each carry their own typed options and validate them up front.
// MethodByName maps the conventional method names ("classic", "sakoechiba",
// "itakura", "multiscale", "fast") to variants with reference defaults.
//
// A constrained search can disconnect the start cell from the end cell; the
// distance then comes back +Inf rather than as an error. Check it with
// IsUnreachable.
//
// Performance:
//
//   - classic / itakura:  O(N²) time, O(N²) memory
//   - sakoechiba:         O(N·w) time, O(N²) memory
//   - multiscale / fast:  corridor-bounded, near-linear in N for small radii
//
// See example_test.go for runnable walkthroughs of every method.
package dtw
