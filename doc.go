// Package partition is a small, dependency-light library for partitioning a
// fixed universe of integer indices into equivalence classes.
//
// 🚀 What is partition?
//
//	A disjoint-set (union-find) structure tuned for partition-refinement
//	workloads, bringing together:
//		• Find/Union with a deterministic smaller-index-wins representative
//		• Lazy materialization of the partition into explicit blocks
//		• One-pass reconciliation of stale blocks via a dirty flag
//		• Flatten as an explicit, optional chain-collapsing hook
//		• Deep Clone for independent mid-algorithm snapshots
//
// ✨ Why choose partition?
//
//   - Stable representatives – the smallest index in a class never changes
//   - Enumeration without the tax – blocks are maintained only when asked for
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – no randomness, no rank heuristic, reproducible always
//
// Everything is organized under one subpackage:
//
//	unionfind/ — the Partition type with Find, Union, Flatten, Blocks,
//	             Count, SameBlock, Clone and String
//
// Quick ASCII example, universe {0..5} after Union(4,1), Union(2,5), Union(1,2):
//
//	{0}  {1 2 4 5}  {3}
//
// Dive into unionfind/doc.go for contracts, complexity, and the
// iterator-invalidation rules of the Blocks view.
//
//	go get github.com/katalvlaran/partition/unionfind
package partition
