// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: ordered Set of canonical edges and its read/write primitives.
// Policy:
//   - Storage is a lock-free tidwall B-tree; a Set is never shared while mutated.
//   - Read paths (queries, Scan, Clone) never write to the receiver, so one Set
//     may be read from many goroutines at once.
//   - Queries accept a nil receiver and treat it as the empty set.
//   - Iteration order is ascending (U, V) everywhere.

package edgeset

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// Set is an ordered set of canonical edges.
// The zero value is not usable for Add/Remove; use New or FromPairs.
type Set struct {
	tree *btree.BTreeG[Edge]
}

// newTree allocates the backing B-tree. Locks are disabled because a Set is
// owned by exactly one builder while it is being filled.
func newTree() *btree.BTreeG[Edge] {
	return btree.NewBTreeGOptions(edgeLess, btree.Options{NoLocks: true})
}

// New returns a Set holding the given edges (canonicalised, duplicates collapse).
// Complexity: O(k log k) for k edges.
func New(edges ...Edge) *Set {
	s := &Set{tree: newTree()}
	for _, e := range edges {
		s.tree.Set(e.canonical())
	}

	return s
}

// FromPairs builds a Set from raw [u, v] pairs as they appear in trace files.
//
// Errors:
//   - ErrSelfLoop / ErrNegativeNode for an invalid pair (wrapped with its index).
func FromPairs(pairs [][2]int) (*Set, error) {
	s := &Set{tree: newTree()}
	for i, p := range pairs {
		e, err := NewEdge(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		s.tree.Set(e)
	}

	return s, nil
}

// MustFromPairs is FromPairs for literals in tests and examples; it panics on error.
func MustFromPairs(pairs [][2]int) *Set {
	s, err := FromPairs(pairs)
	if err != nil {
		panic(err)
	}

	return s
}

// Add inserts e (canonicalised). The receiver must be non-nil.
func (s *Set) Add(e Edge) {
	s.tree.Set(e.canonical())
}

// Remove deletes e if present. The receiver must be non-nil.
func (s *Set) Remove(e Edge) {
	s.tree.Delete(e.canonical())
}

// Has reports whether e is a member.
func (s *Set) Has(e Edge) bool {
	if s == nil || s.tree == nil {
		return false
	}
	_, ok := s.tree.Get(e.canonical())

	return ok
}

// Len returns the number of edges.
func (s *Set) Len() int {
	if s == nil || s.tree == nil {
		return 0
	}

	return s.tree.Len()
}

// Empty reports whether the set has no edges.
func (s *Set) Empty() bool { return s.Len() == 0 }

// Scan calls fn for every edge in ascending order until fn returns false.
func (s *Set) Scan(fn func(e Edge) bool) {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.Scan(fn)
}

// Edges returns the members in ascending order as a fresh slice.
func (s *Set) Edges() []Edge {
	out := make([]Edge, 0, s.Len())
	s.Scan(func(e Edge) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Pairs returns the members as raw [u, v] pairs in ascending order.
func (s *Set) Pairs() [][2]int {
	out := make([][2]int, 0, s.Len())
	s.Scan(func(e Edge) bool {
		out = append(out, [2]int{e.U, e.V})
		return true
	})

	return out
}

// MaxNode returns the largest node id referenced by any edge, or -1 when empty.
func (s *Set) MaxNode() int {
	maxID := -1
	s.Scan(func(e Edge) bool {
		if e.V > maxID {
			maxID = e.V
		}
		return true
	})

	return maxID
}

// Validate checks every member against a node domain of size n.
// The first offending edge (in ascending order) is reported.
func (s *Set) Validate(n int) error {
	var err error
	s.Scan(func(e Edge) bool {
		err = e.Validate(n)
		return err == nil
	})

	return err
}

// Clone returns an independent copy; a nil receiver yields an empty Set.
// Clone only reads s: the copy is rebuilt from an ascending scan, never via
// the B-tree's copy-on-write Copy, which writes to the source tree.
// Complexity: O(k) for k edges.
func (s *Set) Clone() *Set {
	c := New()
	s.Scan(func(e Edge) bool {
		c.tree.Load(e)
		return true
	})

	return c
}

// String renders the set as "{(0,1) (1,2)}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Scan(func(e Edge) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(e.String())
		return true
	})
	b.WriteByte('}')

	return b.String()
}
