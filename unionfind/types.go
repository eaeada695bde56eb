// Package unionfind defines core types and sentinel errors
// for the unionfind subpackage of github.com/katalvlaran/partition.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrNegativeSize indicates New was asked for a universe of negative size.
	ErrNegativeSize = errors.New("unionfind: size must be non-negative")

	// ErrIndexOutOfRange indicates an index outside [0, size). Find, Union and
	// SameBlock panic with this sentinel: an out-of-range index is a caller
	// programming error, never a recoverable condition.
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// Partition is a disjoint-set structure over the fixed universe {0, …, size-1}.
//
// parent holds one entry per index; following parent pointers from any index
// reaches the class representative (the fixed point parent[r] == r), which is
// always the smallest index in the class. blocks is a lazily built cache of
// root → ordered member list; dirty marks it stale after a merging Union.
// count tracks the current number of classes.
//
// The zero value is not usable; construct with New.
type Partition struct {
	parent []int         // parent[i] == i exactly when i is a representative
	blocks map[int][]int // nil until Blocks() is first called
	dirty  bool          // parent changed since blocks was last reconciled
	count  int           // number of classes under the current partition
}

// New constructs a Partition of size singleton classes: parent[i] = i for all
// i in [0, size). size == 0 yields a valid, empty partition.
//
// Returns ErrNegativeSize when size < 0.
// Time: O(size). Memory: O(size).
func New(size int) (*Partition, error) {
	// Validate before allocation.
	if size < 0 {
		return nil, ErrNegativeSize
	}

	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}

	return &Partition{
		parent: parent,
		blocks: nil, // built on first Blocks() call
		dirty:  false,
		count:  size,
	}, nil
}

// Size returns the size of the index universe, fixed at construction.
func (p *Partition) Size() int { return len(p.parent) }

// Count returns the current number of classes. O(1): the counter is
// maintained incrementally by Union.
func (p *Partition) Count() int { return p.count }

// checkIndex panics with ErrIndexOutOfRange unless 0 <= i < size.
func (p *Partition) checkIndex(i int) {
	if i < 0 || i >= len(p.parent) {
		panic(ErrIndexOutOfRange)
	}
}
