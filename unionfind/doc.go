// Package unionfind provides a disjoint-set (union-find) Partition over the
// fixed index universe {0, …, size-1}, with lazy materialization of the
// current partition into explicit blocks.
//
// What:
//
//   - Partition tracks which indices belong to the same equivalence class.
//   - Find(i) returns the class representative: always the smallest index
//     ever merged into the class.
//   - Union(i, j) merges two classes with a deterministic smaller-index-wins
//     rule (no union-by-rank; representatives must stay stable).
//   - Blocks() materializes the partition as root → ordered member list,
//     reconciling a cached view in a single pass instead of rebuilding.
//   - Flatten() collapses parent chains to depth 1 as an optional speed-up.
//
// Why:
//
//   - Partition-refinement algorithms (congruence computation, DFA/coarsest
//     refinement, connected components) perform many unions per enumeration:
//     maintaining explicit class lists on every Union would dominate runtime.
//   - The dirty-flag + one-pass-merge design pays for block maintenance only
//     when blocks are requested, proportionally to the classes merged since
//     the last request — not to the universe size and not to the call count.
//   - The smallest index in a class is a stable canonical representative
//     across any sequence of operations, so callers may key external data by
//     representative without invalidation on Union.
//
// Complexity:
//
//   - New:     O(size) time and memory.
//   - Find:    O(chain length); O(1) after Flatten until further unions.
//   - Union:   two Finds plus O(1).
//   - Flatten: O(size × chain length).
//   - Blocks:  first call O(size); each reconciliation O(size + moved members).
//
// Errors and contracts:
//
//   - ErrNegativeSize: returned by New when size < 0.
//   - ErrIndexOutOfRange: Find, Union and SameBlock panic with this sentinel
//     when given an index outside [0, size). An out-of-range index is a
//     programmer error (precondition violation), not a recoverable runtime
//     condition; the contract is uniform across the package.
//
// Concurrency:
//
//   - A Partition is exclusively owned by its caller and performs no internal
//     locking. Serialize all access externally if shared across goroutines.
//   - The map returned by Blocks() aliases internal state and is valid until
//     the next Union, like an iterator invalidated by container mutation.
//
// See example_test.go for usage.
package unionfind
