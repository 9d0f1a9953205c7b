// Package densemst computes minimum spanning trees over dense distance
// matrices with Kruskal's algorithm.
//
// What is in the box
//
//	A small, deterministic, pure-Go engine:
//		• matrix/  - immutable square distance storage, ingestion from
//		             [][]float64, [][]any (decoded JSON) and gonum matrices,
//		             opt-in symmetry/diagonal validators
//		• kruskal/ - ascending edge order, the component forest (union by
//		             size, ordered link lists) and the Kruskal runner with
//		             its cached total weight
//
// Quick example:
//
//	    0───2
//	        │
//	    1───3
//
//	is the MST of the 4-node matrix used throughout the kruskal examples:
//	links 0-2, 2-3, 1-3 with total weight 600.
//
// Scope: complete graphs given as dense matrices, one batch computation per
// engine value. Sparse or directed graphs and incremental updates are out of
// scope.
//
//	go get github.com/katalvlaran/densemst
package densemst
