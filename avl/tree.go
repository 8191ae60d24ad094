// Package avl: non-mutating queries and bulk operations.

package avl

import (
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/traverse"
)

// Len returns the number of nodes in the tree.
// Complexity: O(1)
func (t *Tree[V]) Len() int { return t.size }

// Root returns the root node, nil for an empty tree. The returned node
// and everything reachable from it remain owned by the tree.
// Complexity: O(1)
func (t *Tree[V]) Root() *core.Node[V] { return t.root }

// Height returns the height of the whole tree in nodes (0 when empty),
// delegating to traverse.Height.
// Complexity: O(n)
func (t *Tree[V]) Height() int { return traverse.Height(t.root) }

// Clear discards the root reference, resets the size counter and the
// id counter. Nodes previously owned by the tree become unreachable.
// Complexity: O(1)
func (t *Tree[V]) Clear() {
	t.root = nil
	t.size = 0
	t.nextID = 0
}

// Find descends from the root comparing v against each visited node and
// returns the first node holding an equal value, or ErrValueNotFound.
// With duplicate values only the first node reached is observed.
// Complexity: O(log n)
func (t *Tree[V]) Find(v V) (*core.Node[V], error) {
	cur := t.root
	for cur != nil {
		switch c := t.cmp(v, cur.Value()); {
		case c < 0:
			cur = cur.Left()
		case c > 0:
			cur = cur.Right()
		default:
			return cur, nil
		}
	}

	return nil, ErrValueNotFound
}

// Min returns the node with the smallest value (all-left descent), or
// ErrEmptyTree for an empty tree.
// Complexity: O(log n)
func (t *Tree[V]) Min() (*core.Node[V], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	return extreme(t.root, core.Left), nil
}

// Max returns the node with the largest value (all-right descent), or
// ErrEmptyTree for an empty tree.
// Complexity: O(log n)
func (t *Tree[V]) Max() (*core.Node[V], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	return extreme(t.root, core.Right), nil
}

// FromSlice clears the tree and inserts each value in input order via
// InsertValue, so ids are the sequential indices 0..len(values)-1.
// An empty (or nil) input leaves an empty tree.
// Complexity: O(n log n)
func (t *Tree[V]) FromSlice(values []V) {
	t.Clear()
	for _, v := range values {
		t.InsertValue(v)
	}
}

// extreme follows side d from n to the end. n must not be nil.
func extreme[V any](n *core.Node[V], d core.Direction) *core.Node[V] {
	for n.Child(d) != nil {
		n = n.Child(d)
	}

	return n
}

// childSide reports which side of parent n hangs on. Only meaningful for
// a non-nil parent actually linked to n.
func childSide[V any](parent, n *core.Node[V]) core.Direction {
	if parent != nil && parent.Left() == n {
		return core.Left
	}

	return core.Right
}
