package kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemst/kruskal"
	"github.com/stretchr/testify/require"
)

// cityMatrix is the 4-node reference instance; its MST is 0-2, 2-3, 1-3 (600).
func cityMatrix() [][]float64 {
	return [][]float64{
		{0, 263, 184, 335},
		{263, 0, 287, 157},
		{184, 287, 0, 259},
		{335, 157, 259, 0},
	}
}

// cityMatrixSmaller keeps the first three nodes of cityMatrix.
func cityMatrixSmaller() [][]float64 {
	return [][]float64{
		{0, 263, 184},
		{263, 0, 287},
		{184, 287, 0},
	}
}

// randomSymmetric builds an n×n symmetric matrix with zero diagonal and integer
// weights in [1..maxW]. A small maxW forces many ties. The generator is seeded
// so every run sees the same matrices.
func randomSymmetric(n int, seed int64, maxW int) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := float64(1 + r.Intn(maxW))
			rows[i][j] = w
			rows[j][i] = w
		}
	}

	return rows
}

// primWeight is an O(n²) Prim used as an independent oracle for the total
// MST weight of a symmetric matrix.
func primWeight(dist [][]float64) float64 {
	n := len(dist)
	inTree := make([]bool, n)
	best := make([]float64, n)
	for v := range best {
		best[v] = math.Inf(1)
	}
	best[0] = 0

	var total float64
	for it := 0; it < n; it++ {
		// Pick the cheapest vertex not yet in the tree.
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && best[v] < minW {
				u, minW = v, best[v]
			}
		}
		inTree[u] = true
		total += minW
		// Relax the remaining vertices through u.
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < best[v] {
				best[v] = dist[u][v]
			}
		}
	}

	return total
}

// requireSpanningTree asserts links form a tree over nodes 0..n-1:
// n-1 links, every node touched, no cycle.
func requireSpanningTree(t *testing.T, n int, links []kruskal.Link) {
	t.Helper()
	require.Len(t, links, n-1)

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}

	touched := make([]bool, n)
	for _, l := range links {
		require.NotEqual(t, l.From, l.To, "self-loop %v", l)
		ra, rb := find(l.From), find(l.To)
		require.NotEqual(t, ra, rb, "link %v closes a cycle", l)
		parent[ra] = rb
		touched[l.From], touched[l.To] = true, true
	}
	for v, ok := range touched {
		require.True(t, ok, "node %d not covered", v)
	}
}
