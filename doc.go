// Package simplevector is a small, dependency-light toolkit around one
// data structure: a generic growable array with an explicit capacity and
// a predictable doubling growth policy.
//
// 🚀 What is in the box?
//
//	arrayptr/      ArrayPtr, a single-owner handle to a fixed-size block
//	vector/        Vector, the growable array (access, insert/erase,
//	               iterators, lexicographic comparison)
//	vecmetrics/    Prometheus counters fed by Vector growth events
//	cmd/vectrace/  CLI that traces capacity transitions of a workload
//
// ✨ Guarantees
//
//   - Amortized O(1) PushBack: capacity goes 0 → 1 → 2 → 4 → 8 …
//   - Strong failure semantics: a failed allocation leaves the Vector as
//     it was
//   - Stale iterators are detected instead of silently reading moved memory
//   - Pure Go, no cgo
//
// Quick ASCII picture of a Vector with size 3 and capacity 4:
//
//	 size=3      capacity=4
//	┌────┬────┬────┬────┐
//	│ 10 │ 15 │ 20 │ ·  │
//	└────┴────┴────┴────┘
//
//	go get github.com/katalvlaran/simplevector/vector
package simplevector
