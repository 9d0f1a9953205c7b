package kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/densemst/matrix"
)

// BuildAscendingOrder extracts every unordered node pair of dist exactly once
// and returns them sorted by ascending weight.
//
// Steps:
//  1. Scan rows in order. In a row-major scan the pair {i, j} is first met at
//     (min, max), because row min comes before row max; so the first-seen
//     weight of every pair is the upper-triangle value dist[i][j], i<j.
//     Asymmetric input is not averaged or minimised: the lower triangle is
//     never read here.
//  2. Stable sort by weight: equal weights keep their extraction order, which
//     decides which of several minimum trees Run returns on ties.
//
// The comparison is cmp.Compare, a total order in which NaN sorts before every
// other value, so NaN weights cannot corrupt the sort.
//
// Returns nil for a nil matrix; otherwise exactly n*(n-1)/2 edges.
// Complexity: O(n² log n) time, O(n²) memory.
func BuildAscendingOrder(dist *matrix.Dense) []Edge {
	if dist == nil {
		return nil
	}

	n := dist.Order()
	edges := make([]Edge, 0, n*(n-1)/2)
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, _ = dist.At(i, j) // in range by construction
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	return edges
}
