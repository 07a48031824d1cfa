// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: canonical unordered node pair and the package sentinel errors.

package edgeset

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge construction and validation.
var (
	// ErrSelfLoop indicates a pair whose endpoints coincide.
	ErrSelfLoop = errors.New("edgeset: self-loop not allowed")

	// ErrNegativeNode indicates a pair referencing a negative node id.
	ErrNegativeNode = errors.New("edgeset: negative node id")

	// ErrNodeOutOfRange indicates a pair referencing an id ≥ the declared node count.
	ErrNodeOutOfRange = errors.New("edgeset: node id out of range")

	// ErrMalformedPair indicates a raw pair that does not hold exactly two ids.
	ErrMalformedPair = errors.New("edgeset: malformed pair")
)

// Edge is an unordered pair of node ids in canonical form (U < V).
//
// Use NewEdge to build one from arbitrary input order. A literal Edge with
// U > V is canonicalised on insertion into a Set.
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {u, v}.
//
// Errors:
//   - ErrSelfLoop     if u == v.
//   - ErrNegativeNode if u < 0 or v < 0.
//
// Complexity: O(1).
func NewEdge(u, v int) (Edge, error) {
	if u < 0 || v < 0 {
		return Edge{}, fmt.Errorf("NewEdge(%d,%d): %w", u, v, ErrNegativeNode)
	}
	if u == v {
		return Edge{}, fmt.Errorf("NewEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	return Edge{U: u, V: v}.canonical(), nil
}

// canonical orders the endpoints so that U ≤ V.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Validate checks e against a node domain of size n.
// A canonical, loop-free pair with both ids in [0, n) is valid.
func (e Edge) Validate(n int) error {
	c := e.canonical()
	switch {
	case c.U < 0:
		return fmt.Errorf("edge %s: %w", e, ErrNegativeNode)
	case c.U == c.V:
		return fmt.Errorf("edge %s: %w", e, ErrSelfLoop)
	case c.V >= n:
		return fmt.Errorf("edge %s with N=%d: %w", e, n, ErrNodeOutOfRange)
	}

	return nil
}

// String renders the pair as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// edgeLess orders edges lexicographically by (U, V).
func edgeLess(a, b Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}
