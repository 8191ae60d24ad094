// Package traverse: structural metrics and in-order stepping.

package traverse

import "github.com/katalvlaran/bintree/core"

// Height returns the number of nodes on the longest path from n down to a
// leaf, inclusive of n itself: a leaf has height 1, a nil reference 0.
// Complexity: O(n) time, O(h) recursion.
func Height[V any](n *core.Node[V]) int {
	if n == nil {
		return 0
	}
	l, r := Height(n.Left()), Height(n.Right())
	if l > r {
		return l + 1
	}
	return r + 1
}

// Depth returns the 1-based distance from n up to its root, inclusive of
// n itself: the root has depth 1, a nil reference 0.
// Complexity: O(h) time.
func Depth[V any](n *core.Node[V]) int {
	d := 0
	for ; n != nil; n = n.Parent() {
		d++
	}
	return d
}

// Successor returns the in-order successor of n, or nil when n is the
// last node (or nil). Walks child or parent links only.
// Complexity: O(h) time.
func Successor[V any](n *core.Node[V]) *core.Node[V] {
	return step(n, core.Right)
}

// Predecessor returns the in-order predecessor of n, or nil when n is the
// first node (or nil).
// Complexity: O(h) time.
func Predecessor[V any](n *core.Node[V]) *core.Node[V] {
	return step(n, core.Left)
}

// step moves one position in-order toward side d: the extreme opposite
// descendant of the d-side child when present, otherwise the first
// ancestor reached from its opposite side.
func step[V any](n *core.Node[V], d core.Direction) *core.Node[V] {
	if n == nil {
		return nil
	}
	if c := n.Child(d); c != nil {
		for c.Child(d.Opposite()) != nil {
			c = c.Child(d.Opposite())
		}
		return c
	}
	cur, up := n, n.Parent()
	for up != nil && cur == up.Child(d) {
		cur, up = up, up.Parent()
	}
	return up
}
