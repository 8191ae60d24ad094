// Package avl: deletion and the upward shrink retrace.

package avl

import "github.com/katalvlaran/bintree/core"

// Delete removes n from the tree and rebalances. Returns core.ErrNilNode
// for a nil node and ErrEmptyTree for an empty tree, both no-ops.
//
// Structural cases:
//
//   - leaf: detached from its parent (or the root reference is cleared);
//   - one child: the child is promoted into n's position;
//   - two children: the in-order successor's id and value are copied into
//     n and the successor node (at most one child) is unlinked instead.
//     A reference to n held before the call observes the successor's
//     identity afterward; the reference that actually leaves the tree is
//     the successor's. This is the classic copy-based technique, kept
//     deliberately.
//
// The physically removed node is Reset before return. Passing a node
// that does not belong to this tree is undefined behavior.
// Complexity: O(log n)
func (t *Tree[V]) Delete(n *core.Node[V]) error {
	if n == nil {
		return core.ErrNilNode
	}
	if t.root == nil {
		return ErrEmptyTree
	}

	if n.Left() != nil && n.Right() != nil {
		succ := extreme(n.Right(), core.Left)
		n.SetID(succ.ID())
		n.SetValue(succ.Value())
		n = succ // successor has no left child
	}

	// Promote the at-most-one child into n's slot.
	child := n.Left()
	if child == nil {
		child = n.Right()
	}
	parent := n.Parent()

	if parent == nil {
		t.root = child
		if child != nil {
			child.SetParent(nil)
		}
		t.size--
		n.Reset()

		return nil
	}

	shrunk := childSide(parent, n)
	parent.SetChild(shrunk, child)
	if child != nil {
		child.SetParent(parent)
	}
	t.size--
	n.Reset()

	if t.rebalance {
		t.retraceShrink(parent, shrunk)
	}

	return nil
}

// DeleteValue locates a node by value via Find and delegates to Delete.
// Returns ErrValueNotFound when no node holds an equal value; with
// duplicates only the first node reached is removed.
// Complexity: O(log n)
func (t *Tree[V]) DeleteValue(v V) error {
	n, err := t.Find(v)
	if err != nil {
		return err
	}

	return t.Delete(n)
}

// retraceShrink walks upward from the parent of the removed node,
// updating balances for the side just shrunk. The stopping condition is
// the inverse of insertion's: a step to ±1 means the subtree height is
// unchanged and the walk ends; a step to 0 means the height shrank and
// propagation continues. A rotation triggered at ±2 ends the walk only
// when it preserved the subtree height (new local root balance ≠ 0);
// otherwise the shrink propagates past it.
func (t *Tree[V]) retraceShrink(n *core.Node[V], shrunk core.Direction) {
	for n != nil {
		if shrunk == core.Left {
			n.SetBalance(n.Balance() + 1)
		} else {
			n.SetBalance(n.Balance() - 1)
		}

		// Record the next hop before any rotation rearranges links;
		// the rotated subtree keeps occupying the same parent slot.
		parent := n.Parent()
		side := childSide(parent, n)

		switch b := n.Balance(); {
		case b == -1 || b == 1:
			return
		case b == 0:
			// height shrank, keep walking
		default: // ±2
			if t.rebalance2(n).Balance() != 0 {
				return
			}
		}

		n, shrunk = parent, side
	}
}
