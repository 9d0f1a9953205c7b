package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/densemst/kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForest_BothFree(t *testing.T) {
	f := kruskal.NewForest(4)
	assert.Equal(t, 4, f.Len())
	assert.Zero(t, f.Components())
	assert.Zero(t, f.Indexed())

	require.True(t, f.Integrate(3, 1))
	assert.Equal(t, 1, f.Components())
	assert.Equal(t, 2, f.Indexed())
	assert.Equal(t, []kruskal.Link{{From: 3, To: 1}}, f.Links(1))
	assert.Equal(t, 2, f.Size(3))

	_, ok := f.ComponentOf(0)
	assert.False(t, ok, "node 0 is still free")
	assert.Nil(t, f.Links(0))
	assert.Zero(t, f.Size(0))
}

// TestForest_FreeJoinsExisting: the existing node is recorded first whatever
// the argument order.
func TestForest_FreeJoinsExisting(t *testing.T) {
	f := kruskal.NewForest(4)
	require.True(t, f.Integrate(0, 1))
	require.True(t, f.Integrate(2, 1)) // 2 is free
	require.True(t, f.Integrate(0, 3)) // 3 is free

	assert.Equal(t, 1, f.Components())
	assert.Equal(t, 4, f.Indexed())
	assert.True(t, f.Complete())
	assert.Equal(t, []kruskal.Link{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 0, To: 3},
	}, f.Links(2))
}

func TestForest_CycleIsDiscarded(t *testing.T) {
	f := kruskal.NewForest(3)
	require.True(t, f.Integrate(0, 1))
	require.True(t, f.Integrate(1, 2))

	before := f.Links(0)
	assert.False(t, f.Integrate(0, 2))
	assert.False(t, f.Integrate(2, 0))
	assert.Equal(t, before, f.Links(0))
	assert.Equal(t, 1, f.Components())
	assert.Equal(t, 3, f.Indexed())
}

// TestForest_MergeOrder merges a small tree holding the first endpoint into a
// larger one. Union by size makes the larger root survive, yet the links must
// still read: first tree, joining edge, second tree.
func TestForest_MergeOrder(t *testing.T) {
	f := kruskal.NewForest(6)
	require.True(t, f.Integrate(0, 1)) // A = {0,1}
	require.True(t, f.Integrate(2, 3)) // B = {2,3}
	require.True(t, f.Integrate(3, 4)) // B = {2,3,4}
	require.Equal(t, 2, f.Components())

	keyB, _ := f.ComponentOf(2)
	require.True(t, f.Integrate(1, 2))
	assert.Equal(t, 1, f.Components())
	assert.Equal(t, 5, f.Indexed())
	assert.False(t, f.Complete(), "node 5 is still free")

	keyA, _ := f.ComponentOf(0)
	assert.Equal(t, keyB, keyA, "larger tree keeps its key")

	want := []kruskal.Link{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4},
	}
	for v := 0; v < 5; v++ {
		assert.Equal(t, want, f.Links(v), "links seen from node %d", v)
	}

	require.True(t, f.Integrate(5, 4))
	assert.True(t, f.Complete())
	assert.Equal(t, append(want, kruskal.Link{From: 4, To: 5}), f.Links(5))
}

// TestForest_MergeOrderSecondSmaller is the mirror case: the first tree is
// larger and survives.
func TestForest_MergeOrderSecondSmaller(t *testing.T) {
	f := kruskal.NewForest(5)
	require.True(t, f.Integrate(0, 1))
	require.True(t, f.Integrate(1, 2)) // A = {0,1,2}
	require.True(t, f.Integrate(4, 3)) // B = {4,3}
	require.True(t, f.Integrate(3, 0))

	assert.True(t, f.Complete())
	assert.Equal(t, []kruskal.Link{
		{From: 4, To: 3},
		{From: 3, To: 0},
		{From: 0, To: 1},
		{From: 1, To: 2},
	}, f.Links(0))
}

func TestForest_RejectsBadNodes(t *testing.T) {
	f := kruskal.NewForest(3)
	assert.False(t, f.Integrate(-1, 0))
	assert.False(t, f.Integrate(0, 3))
	assert.False(t, f.Integrate(1, 1))
	assert.Zero(t, f.Indexed())

	_, ok := f.ComponentOf(7)
	assert.False(t, ok)

	empty := kruskal.NewForest(-2)
	assert.Zero(t, empty.Len())
	assert.False(t, empty.Complete())
}

// TestForest_Invariants feeds every pair of a random order and checks the
// partition after each step.
func TestForest_Invariants(t *testing.T) {
	const n = 9
	rows := randomSymmetric(n, 7, 3)
	k, err := kruskal.New(rows)
	require.NoError(t, err)

	f := kruskal.NewForest(n)
	accepted := 0
	for _, e := range k.BuildAscendingOrder() {
		if f.Integrate(e.From, e.To) {
			accepted++
		}

		// Sum of sizes over distinct components equals Indexed; each tree has
		// size-1 links.
		roots := map[int]bool{}
		total := 0
		for v := 0; v < n; v++ {
			key, ok := f.ComponentOf(v)
			if !ok || roots[key] {
				continue
			}
			roots[key] = true
			total += f.Size(v)
			require.Len(t, f.Links(v), f.Size(v)-1)
		}
		require.Equal(t, f.Components(), len(roots))
		require.Equal(t, f.Indexed(), total)
		require.Equal(t, accepted, f.Indexed()-f.Components())
	}
	require.True(t, f.Complete())
	require.Equal(t, n-1, accepted)
}
