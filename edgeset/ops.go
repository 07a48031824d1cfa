// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: pure set algebra over *Set. No operation mutates its arguments.

package edgeset

// Union returns a ∪ b as a new Set.
// Complexity: O((|a|+|b|) log(|a|+|b|)).
func Union(a, b *Set) *Set {
	out := a.Clone()
	b.Scan(func(e Edge) bool {
		out.tree.Set(e)
		return true
	})

	return out
}

// Difference returns a − b as a new Set.
// Complexity: O(|a| log |b|).
func Difference(a, b *Set) *Set {
	out := New()
	a.Scan(func(e Edge) bool {
		if !b.Has(e) {
			out.tree.Set(e)
		}
		return true
	})

	return out
}

// Apply returns (state ∪ in) − out, the state after one event step.
func Apply(state, in, out *Set) *Set {
	next := Union(state, in)
	out.Scan(func(e Edge) bool {
		next.tree.Delete(e)
		return true
	})

	return next
}

// Intersects reports whether a and b share at least one edge.
func Intersects(a, b *Set) bool {
	// iterate the smaller side
	if a.Len() > b.Len() {
		a, b = b, a
	}
	found := false
	a.Scan(func(e Edge) bool {
		found = b.Has(e)
		return !found
	})

	return found
}

// IsSubset reports whether every edge of a is in b.
func IsSubset(a, b *Set) bool {
	if a.Len() > b.Len() {
		return false
	}
	ok := true
	a.Scan(func(e Edge) bool {
		ok = b.Has(e)
		return ok
	})

	return ok
}

// Equal reports whether a and b hold exactly the same edges.
func Equal(a, b *Set) bool {
	return a.Len() == b.Len() && IsSubset(a, b)
}
