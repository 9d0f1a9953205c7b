// Package kruskal computes the Minimum Spanning Tree (MST) of a complete,
// undirected, weighted graph given as a dense n×n distance matrix, using
// Kruskal's greedy edge selection.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices with the minimum total weight and no cycles.
//
//   - Why a matrix engine?
//     Distance matrices are what clustering, routing and TSP heuristics already
//     hold. Feeding them straight into Kruskal avoids building a graph object
//     with n² edges first.
//
// Usage
//
//	k, err := kruskal.New([][]float64{
//		{0, 263, 184, 335},
//		{263, 0, 287, 157},
//		{184, 287, 0, 259},
//		{335, 157, 259, 0},
//	})
//	if err != nil { ... }            // errors.Is(err, kruskal.ErrInvalidInput)
//	if k.Run() {
//		tree := k.MinimumSpanningTree() // [0-2 2-3 1-3]
//		total, _ := k.Distance()        // 600
//	}
//
// or in one call: links, total, err := kruskal.Compute(rows).
//
// Algorithm
//
//  1. BuildAscendingOrder lists each unordered pair once with its first-seen
//     (upper-triangle) weight and stable-sorts by weight; ties keep row-major
//     order.
//  2. Run feeds the edges to a Forest. Edges joining two nodes of the same
//     tree are silently dropped; the others start, grow or merge trees.
//  3. Run stops as soon as one tree holds every node and keeps its links in
//     the order they were added.
//
// Complexity: O(n² log n) time for the sort, O(n²) memory for the edge list.
//
// Determinism
//
//   - Tie-breaking is fixed by the stable sort, so equal-weight edges are
//     always tried in row-major order and the same tree is returned every time.
//   - Link order reflects the merge history: when trees A (holding the first
//     endpoint) and B merge through a-b, the links read A..., a-b, B....
//
// Input policy
//
//   - Constructors reject fewer than 2 rows, missing cells and non-scalar
//     cells with ErrInvalidInput; nothing else is checked.
//   - For asymmetric input the weight used for ordering is dist[i][j] with i<j,
//     while Distance sums dist[From][To] in the stored link direction. Use
//     matrix.ValidateSymmetric first if that distinction matters.
//
// Concurrency
//
//	Single-threaded and synchronous. A Kruskal value must not be shared
//	between goroutines without external locking; separate values are
//	independent.
//
// For examples of usage, see the example_test.go file in this package.
package kruskal
