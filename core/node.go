// Package core: Node accessor implementations.
//
// All accessors are local: they touch only the receiver's own fields and
// never walk the tree. Consistency of the surrounding graph (parent/child
// symmetry, balance exactness) is the owning container's job.
//
// Malformed assignments are ignored or clamped rather than reported:
// a self-referential link is a no-op and a balance outside [-2, 2] is
// clamped at assignment. The containers never produce either.

package core

// ID returns the node's identity token. Identity is opaque to ordering;
// it exists only so callers can recognize nodes externally.
func (n *Node[V]) ID() uint64 { return n.id }

// SetID overwrites the identity token.
func (n *Node[V]) SetID(id uint64) { n.id = id }

// Value returns the payload.
func (n *Node[V]) Value() V { return n.value }

// SetValue overwrites the payload. Changing the value of a node that is
// currently linked into a tree breaks the ordering invariant; only the
// owning container may do it (it does so during two-child deletion).
func (n *Node[V]) SetValue(v V) { n.value = v }

// Parent returns the parent link, nil for a root or detached node.
func (n *Node[V]) Parent() *Node[V] { return n.parent }

// SetParent points the back-reference at p. A self-referential p is ignored.
func (n *Node[V]) SetParent(p *Node[V]) {
	if p == n {
		return
	}
	n.parent = p
}

// Left returns the left child, nil when absent.
func (n *Node[V]) Left() *Node[V] { return n.left }

// SetLeft attaches c as the left child. A self-referential c is ignored.
func (n *Node[V]) SetLeft(c *Node[V]) {
	if c == n {
		return
	}
	n.left = c
}

// Right returns the right child, nil when absent.
func (n *Node[V]) Right() *Node[V] { return n.right }

// SetRight attaches c as the right child. A self-referential c is ignored.
func (n *Node[V]) SetRight(c *Node[V]) {
	if c == n {
		return
	}
	n.right = c
}

// Child returns the child on side d.
func (n *Node[V]) Child(d Direction) *Node[V] {
	if d == Left {
		return n.left
	}
	return n.right
}

// SetChild attaches c on side d. A self-referential c is ignored.
func (n *Node[V]) SetChild(d Direction, c *Node[V]) {
	if d == Left {
		n.SetLeft(c)
		return
	}
	n.SetRight(c)
}

// Balance returns the cached balance factor,
// height(right subtree) − height(left subtree).
func (n *Node[V]) Balance() int { return n.balance }

// SetBalance stores b, clamped to [-2, 2]. Values of ±2 are transient:
// a rebalanced tree holds every node in [-1, 1].
func (n *Node[V]) SetBalance(b int) {
	if b < minBalance {
		b = minBalance
	} else if b > maxBalance {
		b = maxBalance
	}
	n.balance = b
}

// Leaf reports whether the node has no children.
func (n *Node[V]) Leaf() bool { return n.left == nil && n.right == nil }

// Reset detaches the node: parent and child links are dropped and the
// balance factor zeroed. Identity and value are kept. A node must be
// Reset before it migrates between containers.
func (n *Node[V]) Reset() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.balance = 0
}
