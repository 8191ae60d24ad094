// Package avl: rotation primitives.
//
// Both rotations are exposed publicly so rebalancing can be exercised in
// isolation. The direction argument names the HEAVY side: core.Left means
// the left subtree is too tall and the subtree rotates rightward.
//
// Affected balance factors are recomputed directly from structure via
// traverse.Height rather than by propagating arithmetic deltas, so a
// rotation can never compound a stale balance into a wrong one.

package avl

import (
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/traverse"
)

// RotateSingle promotes the heavy child of n into n's position: n becomes
// the demoted child on the opposite side, and the heavy child's inner
// subtree re-hangs on n's vacated side. The new local root is re-attached
// to n's former parent, or becomes the tree root if n had none, and is
// returned.
//
// A nil n returns nil; an n without a child on the heavy side is returned
// unchanged (nothing to promote).
// Complexity: linear in the rotated subtree, for the balance recomputation.
func (t *Tree[V]) RotateSingle(n *core.Node[V], heavy core.Direction) *core.Node[V] {
	if n == nil {
		return nil
	}
	pivot := n.Child(heavy)
	if pivot == nil {
		return n
	}

	parent := n.Parent()
	side := childSide(parent, n)

	inner := pivot.Child(heavy.Opposite())
	n.SetChild(heavy, inner)
	if inner != nil {
		inner.SetParent(n)
	}
	pivot.SetChild(heavy.Opposite(), n)
	n.SetParent(pivot)

	t.reattach(pivot, parent, side)

	recompute(n)
	recompute(pivot)

	return pivot
}

// RotateDouble first rotates the heavy child away from n's heavy side,
// then rotates n itself — the zig-zag case, equivalent to two single
// rotations in sequence. The resulting local root (the former inner
// grandchild) is re-attached to n's former parent, or becomes the tree
// root, and is returned.
//
// A nil n returns nil; n is returned unchanged when the heavy child or
// its inner grandchild is absent.
// Complexity: linear in the rotated subtree.
func (t *Tree[V]) RotateDouble(n *core.Node[V], heavy core.Direction) *core.Node[V] {
	if n == nil {
		return nil
	}
	pivot := n.Child(heavy)
	if pivot == nil || pivot.Child(heavy.Opposite()) == nil {
		return n
	}

	t.RotateSingle(pivot, heavy.Opposite())

	return t.RotateSingle(n, heavy)
}

// reattach hangs sub on parent's given side, or installs it as the tree
// root when parent is nil.
func (t *Tree[V]) reattach(sub, parent *core.Node[V], side core.Direction) {
	sub.SetParent(parent)
	if parent == nil {
		t.root = sub

		return
	}
	parent.SetChild(side, sub)
}

// recompute refreshes n's balance factor from subtree structure.
func recompute[V any](n *core.Node[V]) {
	n.SetBalance(traverse.Height(n.Right()) - traverse.Height(n.Left()))
}
