// Package kruskal defines sentinel errors, edge types and configuration
// options for the MST engine.
package kruskal

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates that the distance matrix handed to a constructor
// is structurally unusable: fewer than 2 rows, a missing cell, or a
// non-scalar cell. The concrete cause is wrapped alongside it.
var ErrInvalidInput = errors.New("kruskal: invalid input matrix")

// ErrTooFewRows is the cause wrapped with ErrInvalidInput when the matrix has
// fewer than 2 rows.
var ErrTooFewRows = errors.New("kruskal: matrix has fewer than 2 rows")

// ErrDisconnected indicates that the edge list was exhausted before a single
// component covered every node. Only Compute returns it; Run reports the same
// outcome as false.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// minOrder is the smallest matrix order the engine accepts.
const minOrder = 2

// invalidInput joins ErrInvalidInput with the concrete cause.
func invalidInput(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, cause)
}

// Edge is an undirected candidate edge produced by BuildAscendingOrder.
// From < To always holds; Weight is the first-seen matrix value for the pair,
// which is dist[From][To].
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Link is one edge of the resulting tree, recorded in the order it was
// selected. From is the node that was already part of a tree (or the first
// node passed to Forest.Integrate), To is the node being attached.
type Link struct {
	From int
	To   int
}

// String renders the link as "From-To".
func (l Link) String() string {
	return fmt.Sprintf("%d-%d", l.From, l.To)
}

// Options configures a Kruskal engine.
type Options struct {
	// OnIntegrate is called for every edge consumed by Run, in ascending
	// order, after the forest has processed it. accepted is false when the
	// edge would have closed a cycle and was discarded.
	OnIntegrate func(e Edge, accepted bool)
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnIntegrate hook.
func DefaultOptions() Options {
	return Options{
		OnIntegrate: func(Edge, bool) {},
	}
}

// WithOnIntegrate registers a hook observing every consumed edge.
// A nil fn is ignored.
func WithOnIntegrate(fn func(e Edge, accepted bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIntegrate = fn
		}
	}
}
