// Package bst: the unbalanced container implementation.

package bst

import (
	"github.com/katalvlaran/bintree/avl"
	"github.com/katalvlaran/bintree/core"
)

// Tree is a binary search tree that never rotates: insertion order alone
// dictates its shape. The zero value is not usable; construct with New.
type Tree[V any] struct {
	inner *avl.Tree[V]
}

// New returns an empty unbalanced tree bound to cmp.
// Returns avl.ErrNilComparator if cmp is nil.
// Complexity: O(1)
func New[V any](cmp core.Cmp[V]) (*Tree[V], error) {
	inner, err := avl.New(cmp, avl.WithoutRebalance())
	if err != nil {
		return nil, err
	}

	return &Tree[V]{inner: inner}, nil
}

// Insert attaches n by the shared descent rule (less goes left, not-less
// goes right) without any rebalancing. Nil nodes are a no-op error.
// Complexity: O(h) — h is unbounded by balance here.
func (t *Tree[V]) Insert(n *core.Node[V]) error { return t.inner.Insert(n) }

// InsertValue constructs a node from v with the next sequential id and
// inserts it, returning the new node.
func (t *Tree[V]) InsertValue(v V) *core.Node[V] { return t.inner.InsertValue(v) }

// InsertValueWithID is InsertValue with a caller-chosen id.
func (t *Tree[V]) InsertValueWithID(v V, id uint64) *core.Node[V] {
	return t.inner.InsertValueWithID(v, id)
}

// Find returns the first node holding an equal value, or
// avl.ErrValueNotFound.
func (t *Tree[V]) Find(v V) (*core.Node[V], error) { return t.inner.Find(v) }

// Min returns the all-left extreme, or avl.ErrEmptyTree when empty.
func (t *Tree[V]) Min() (*core.Node[V], error) { return t.inner.Min() }

// Max returns the all-right extreme, or avl.ErrEmptyTree when empty.
func (t *Tree[V]) Max() (*core.Node[V], error) { return t.inner.Max() }

// FromSlice clears the tree and inserts each value in input order,
// ids sequential from 0.
func (t *Tree[V]) FromSlice(values []V) { t.inner.FromSlice(values) }

// Len returns the number of nodes.
func (t *Tree[V]) Len() int { return t.inner.Len() }

// Root returns the root node, nil when empty.
func (t *Tree[V]) Root() *core.Node[V] { return t.inner.Root() }

// Height returns the tree height in nodes (0 when empty).
func (t *Tree[V]) Height() int { return t.inner.Height() }

// Clear discards all nodes and resets the counters.
func (t *Tree[V]) Clear() { t.inner.Clear() }

// Check audits search order, parent links and the size counter (balance
// factors are not maintained here and are not checked).
func (t *Tree[V]) Check() error { return t.inner.Check() }
