// Package kruskal provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm over a dense distance matrix.
package kruskal

import (
	"github.com/katalvlaran/densemst/matrix"
)

// Kruskal computes the minimum spanning tree of the complete graph described
// by an n×n distance matrix.
//
// A Kruskal value is single-use: Run computes once and later calls return the
// first outcome. It is not safe for concurrent use; build one value per
// goroutine or serialise access.
type Kruskal struct {
	dist *matrix.Dense // immutable input, n >= 2
	opts Options

	ran   bool   // Run has executed
	found bool   // Run reached a single spanning tree
	tree  []Link // selected links in insertion order, empty unless found

	distance   float64 // cached tree weight
	distCached bool    // distance holds a computed value
}

// New validates rows and returns an engine over a private copy of them.
//
// Error Conditions (all match ErrInvalidInput via errors.Is):
//   - fewer than 2 rows (cause ErrTooFewRows);
//   - row i shorter than len(rows) (cause matrix.ErrMissingCell).
//
// Columns past len(rows) are ignored. Symmetry, sign and the diagonal are not
// checked.
// Complexity: O(n²).
func New(rows [][]float64, opts ...Option) (*Kruskal, error) {
	if len(rows) < minOrder {
		return nil, invalidInput(ErrTooFewRows)
	}
	dist, err := matrix.FromRows(rows)
	if err != nil {
		return nil, invalidInput(err)
	}

	return newKruskal(dist, opts), nil
}

// NewFromCells is New for dynamically typed input such as a decoded JSON
// array. Besides the New conditions it rejects nil cells
// (matrix.ErrMissingCell) and cells that are not scalar numbers
// (matrix.ErrNonScalar), all wrapped with ErrInvalidInput.
// Complexity: O(n²).
func NewFromCells(cells [][]any, opts ...Option) (*Kruskal, error) {
	if len(cells) < minOrder {
		return nil, invalidInput(ErrTooFewRows)
	}
	dist, err := matrix.FromCells(cells)
	if err != nil {
		return nil, invalidInput(err)
	}

	return newKruskal(dist, opts), nil
}

// NewFromMatrix wraps an already ingested matrix. Dense is immutable, so no
// copy is made.
// Errors: ErrInvalidInput with matrix.ErrNilMatrix or ErrTooFewRows.
func NewFromMatrix(dist *matrix.Dense, opts ...Option) (*Kruskal, error) {
	if dist == nil {
		return nil, invalidInput(matrix.ErrNilMatrix)
	}
	if dist.Order() < minOrder {
		return nil, invalidInput(ErrTooFewRows)
	}

	return newKruskal(dist, opts), nil
}

func newKruskal(dist *matrix.Dense, opts []Option) *Kruskal {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Kruskal{dist: dist, opts: o, tree: []Link{}}
}

// N returns the number of nodes.
func (k *Kruskal) N() int { return k.dist.Order() }

// BuildAscendingOrder returns the sorted candidate edges of k's matrix.
// It does not depend on, or affect, Run.
// Complexity: O(n² log n).
func (k *Kruskal) BuildAscendingOrder() []Edge {
	return BuildAscendingOrder(k.dist)
}

// Run computes the minimum spanning tree and reports whether one tree covering
// all nodes was found. For a complete matrix this is always true; false means
// the candidate edges ran out first, and the results stay empty.
//
// Steps:
//  1. Build the ascending edge order.
//  2. Feed each edge to a fresh Forest; edges closing a cycle are dropped.
//  3. Stop as soon as one component holds all n nodes and keep its links.
//
// Complexity: O(n² log n) dominated by the sort; the forest adds O(n² α(n)).
func (k *Kruskal) Run() bool {
	if k.ran {
		return k.found
	}
	k.ran = true
	k.found = k.buildTree(k.BuildAscendingOrder())

	return k.found
}

// buildTree consumes order until the forest spans all nodes.
func (k *Kruskal) buildTree(order []Edge) bool {
	forest := NewForest(k.N())
	var accepted bool
	for _, e := range order {
		accepted = forest.Integrate(e.From, e.To)
		k.opts.OnIntegrate(e, accepted)
		if forest.Complete() {
			k.tree = forest.Links(e.From)
			return true
		}
	}

	return false
}

// MinimumSpanningTree returns a copy of the selected links in the order they
// were added. It is empty (never nil) before Run and when Run returned false.
func (k *Kruskal) MinimumSpanningTree() []Link {
	out := make([]Link, len(k.tree))
	copy(out, k.tree)

	return out
}

// Distance returns the total weight of the tree and true, or 0 and false when
// there is no tree yet.
//
// The weight is the sum of dist[From][To] over the links, read in the stored
// direction. It is computed on the first call that finds a tree and cached;
// later calls return the cached value. An absent result is not cached, so
// Distance called before Run reports the tree once Run succeeds.
func (k *Kruskal) Distance() (float64, bool) {
	if k.distCached {
		return k.distance, true
	}
	if len(k.tree) == 0 {
		return 0, false
	}

	var (
		sum float64
		w   float64
	)
	for _, l := range k.tree {
		w, _ = k.dist.At(l.From, l.To) // in range by construction
		sum += w
	}
	k.distance, k.distCached = sum, true

	return sum, true
}

// Compute runs Kruskal once over rows and returns the tree links and their
// total weight.
//
// Error Conditions:
//   - ErrInvalidInput: see New.
//   - ErrDisconnected: Run returned false.
func Compute(rows [][]float64, opts ...Option) ([]Link, float64, error) {
	k, err := New(rows, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !k.Run() {
		return nil, 0, ErrDisconnected
	}
	total, _ := k.Distance()

	return k.MinimumSpanningTree(), total, nil
}
