// Package schelling is an in-memory engine for Thomas Schelling's model
// of residential segregation — agents of two groups scattered on a 2D
// grid, each relocating to a random vacant cell whenever too few of its
// neighbors look like itself.
//
// 🚀 What is schelling?
//
//	A small, deterministic simulation core:
//		• Grid construction: i.i.d. three-state sampling (GroupA / GroupB / Vacant)
//		• Satisfaction: similarity ratio over a clipped square neighborhood window
//		• Step: sequential in-place relocation of unhappy occupants
//		• Metric: mean similarity ratio across the whole grid
//
// ✨ Why choose schelling?
//
//   - Reproducible – every random decision flows from an injectable seeded source
//   - Explicit semantics – boundary clipping and in-place update order are
//     documented, tested behavior, not accidents of slicing
//   - Pure Go – no cgo, no hidden deps
//   - UI-agnostic – rendering and parameter controls live entirely outside;
//     the engine exposes snapshots and one scalar metric
//
// Everything lives in one subpackage:
//
//	segregation/ — Grid type, Step, MeanSimilarity, error taxonomy
//
// Quick ASCII example of a 4×4 grid mid-run (A/B groups, . vacant):
//
//	A A . B
//	A A B B
//	. A B B
//	A . B B
//
// Dive into segregation/doc.go for semantics, complexity and errors, and
// examples/ for a full driver loop.
//
//	go get github.com/katalvlaran/schelling/segregation
package schelling
