package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_NoPathCompression pins the contract that Find never rewrites
// parent pointers: after building the chain 2 → 1 → 0, repeated Finds leave
// the intermediate link in place.
func TestFind_NoPathCompression(t *testing.T) {
	p, err := New(3)
	require.NoError(t, err)

	p.Union(1, 2) // parent[2] = 1
	p.Union(0, 2) // find(2) = 1, so parent[1] = 0

	assert.Equal(t, 0, p.Find(2))
	assert.Equal(t, 0, p.Find(2))
	assert.Equal(t, 1, p.parent[2]) // chain untouched by reads
}

// TestFlatten_CollapsesChains verifies that Flatten leaves every parent
// pointer aimed directly at its root.
func TestFlatten_CollapsesChains(t *testing.T) {
	p, err := New(6)
	require.NoError(t, err)

	p.Union(4, 5)
	p.Union(3, 4)
	p.Union(2, 3)
	p.Flatten()

	for i := range p.parent {
		assert.Equal(t, p.Find(i), p.parent[i])
	}
}

// TestBlocks_DirtyLifecycle pins the Clean/Dirty state machine: only a
// merging Union marks the cache stale, and Blocks restores cleanliness.
func TestBlocks_DirtyLifecycle(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)
	assert.False(t, p.dirty)

	p.Union(0, 1)
	assert.True(t, p.dirty)

	_ = p.Blocks()
	assert.False(t, p.dirty)

	p.Union(0, 1) // no-op: already joined, stays clean
	assert.False(t, p.dirty)

	p.Flatten() // never touches staleness
	assert.False(t, p.dirty)
}
