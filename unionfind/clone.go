package unionfind

import (
	"fmt"
	"sort"
	"strings"
)

// Clone returns an independent deep copy of p: the parent table, the blocks
// cache (when built) and the staleness flag are all duplicated, so the copy
// and the original can diverge freely mid-algorithm.
//
// Time: O(size). Memory: O(size).
func (p *Partition) Clone() *Partition {
	cp := &Partition{
		parent: make([]int, len(p.parent)),
		dirty:  p.dirty,
		count:  p.count,
	}
	copy(cp.parent, p.parent)

	// Copy the cache only if it was ever materialized.
	if p.blocks != nil {
		cp.blocks = make(map[int][]int, len(p.blocks))
		for root, members := range p.blocks {
			dup := make([]int, len(members))
			copy(dup, members)
			cp.blocks[root] = dup
		}
	}

	return cp
}

// String renders the partition as blocks in ascending representative order,
// e.g. "{0 1 3}{2}{4 5}". It materializes (and reconciles) the blocks cache,
// so String on a stale Partition performs the same work as Blocks.
func (p *Partition) String() string {
	blocks := p.Blocks()

	// Sort representatives for a deterministic rendering.
	roots := make([]int, 0, len(blocks))
	for r := range blocks {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	var sb strings.Builder
	for _, r := range roots {
		sb.WriteByte('{')
		for k, m := range blocks[r] {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m)
		}
		sb.WriteByte('}')
	}

	return sb.String()
}
