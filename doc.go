// Package tswarp is your in-memory toolbox for comparing numeric time
// series — from the classic Dynamic Time Warping recurrence to banded,
// slope-bounded and coarse-to-fine approximations.
//
// 🚀 What is tswarp?
//
//	A pure-computation library that brings together:
//		• Pointwise cost: squared & absolute differences + custom functions
//		• Cost / accumulated cost matrices, dense or corridor-restricted
//		• Optimal alignment paths with deterministic tie-breaking
//		• Constraint regions: Sakoe–Chiba band, Itakura parallelogram
//		• Approximations: MultiscaleDTW and FastDTW resolution pyramids
//
// ✨ Why choose tswarp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always produce identical outputs
//   - Value semantics – every matrix and region is produced fresh per call
//   - Typed methods – one variant per algorithm, no stringly-typed dispatch
//
// Everything lives under one subpackage:
//
//	dtw/ — distances, matrices, regions, paths and the method dispatcher
//
// Quick ASCII example:
//
//	    y ▲        ███
//	      │     ██████
//	      │  ██████
//	      │██████
//	      └──────────▶ x
//
//	a Sakoe–Chiba band: only cells near the diagonal are searched.
//
// Dive into dtw/doc.go for the full API walkthrough and complexity notes.
//
//	go get github.com/katalvlaran/tswarp/dtw
package tswarp
