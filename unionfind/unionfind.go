// Package unionfind implements the Partition operations: Find, Union,
// Flatten and the lazy Blocks materialization.
package unionfind

// Find returns the representative of the class containing i: the fixed point
// reached by following parent pointers. The representative is always the
// smallest index in the class.
//
// Find performs no path compression — chains are only shortened by the
// explicit Flatten call — so it is a pure read with no side effects.
//
// Panics with ErrIndexOutOfRange when i is outside [0, size).
// Time: O(chain length).
func (p *Partition) Find(i int) int {
	p.checkIndex(i)

	// Chase parent pointers until the fixed point parent[r] == r.
	for p.parent[i] != i {
		i = p.parent[i]
	}

	return i
}

// Union merges the classes containing i and j. The parent of the numerically
// larger root is set to the numerically smaller root, so the smallest index
// in a class survives as its representative across any operation sequence.
// Already-joined indices are a no-op, making Union idempotent.
//
// A merging Union marks the cached blocks stale; they are reconciled on the
// next Blocks() call.
//
// Panics with ErrIndexOutOfRange when i or j is outside [0, size).
// Time: two Finds plus O(1).
func (p *Partition) Union(i, j int) {
	ri := p.Find(i) // checks i
	rj := p.Find(j) // checks j
	if ri == rj {
		// Same class already; nothing changes, blocks stay clean.
		return
	}

	// Deterministic tie-break: smaller root wins, never rank or size.
	if ri < rj {
		p.parent[rj] = ri
	} else {
		p.parent[ri] = rj
	}

	p.dirty = true
	p.count--
}

// SameBlock reports whether i and j currently belong to the same class.
//
// Panics with ErrIndexOutOfRange when i or j is outside [0, size).
func (p *Partition) SameBlock(i, j int) bool {
	return p.Find(i) == p.Find(j)
}

// Flatten rewrites every parent pointer to point directly at its root,
// collapsing all chains to depth 1. The partition observed by Find is
// unchanged; subsequent Finds run in O(1) until further unions.
//
// Flatten is an optional optimization hook — correctness never depends on it.
// Time: O(size × chain length).
func (p *Partition) Flatten() {
	for i := range p.parent {
		p.parent[i] = p.Find(i)
	}
}

// Blocks returns the partition materialized as root → ordered member list,
// reconciling the cached view first when it is stale.
//
// On first call the cache is built fresh: one singleton list per index. On a
// call after merging unions, a single ascending pass over 0..size-1 moves
// each stale entry's member list into its current root's list (appending,
// preserving prior relative order) and removes the stale key. Cost of a
// reconciliation is O(size) plus the members moved — proportional to the
// merges since the last call, never a rebuild from scratch.
//
// The returned map is the internal cache: it stays valid until the next
// merging Union and must not be mutated by the caller. Keys are exactly the
// current representatives; the union of all lists is {0, …, size-1}.
func (p *Partition) Blocks() map[int][]int {
	// Build the cache on first access: every index its own singleton block.
	if p.blocks == nil {
		p.blocks = make(map[int][]int, len(p.parent))
		for i := range p.parent {
			p.blocks[i] = []int{i}
		}
	}

	// Reconcile in one ascending pass. Roots only ever decrease (smaller
	// index wins), so when index i has been absorbed, its current root r < i
	// was already visited and is guaranteed stable for this pass.
	if p.dirty {
		for i := range p.parent {
			members, ok := p.blocks[i]
			if !ok {
				// Not a key since the last reconciliation; already moved.
				continue
			}
			if r := p.Find(i); r != i {
				// Move i's entire list into its root's block, in place.
				p.blocks[r] = append(p.blocks[r], members...)
				delete(p.blocks, i)
			}
		}
		p.dirty = false
	}

	return p.blocks
}
