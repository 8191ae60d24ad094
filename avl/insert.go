// Package avl: insertion and the upward growth retrace.

package avl

import "github.com/katalvlaran/bintree/core"

// Insert attaches n at its ordered position and rebalances. Descent moves
// left on "less" and right on "not less", so duplicate values land in the
// right subtree. Returns core.ErrNilNode (no-op) for a nil node.
//
// n must be detached (fresh or Reset); inserting a node still linked into
// another tree is undefined behavior.
// Complexity: O(log n)
func (t *Tree[V]) Insert(n *core.Node[V]) error {
	if n == nil {
		return core.ErrNilNode
	}

	if t.root == nil {
		n.SetParent(nil)
		n.SetBalance(0)
		t.root = n
		t.size = 1

		return nil
	}

	// Standard BST descent to the first absent child slot.
	cur := t.root
	for {
		d := core.Right
		if t.cmp(n.Value(), cur.Value()) < 0 {
			d = core.Left
		}
		next := cur.Child(d)
		if next == nil {
			cur.SetChild(d, n)
			n.SetParent(cur)
			break
		}
		cur = next
	}
	t.size++

	if t.rebalance {
		t.retraceGrowth(n)
	}

	return nil
}

// InsertValue constructs a node from v with the next sequential id owned
// by this tree and inserts it. Returns the new node.
// Complexity: O(log n)
func (t *Tree[V]) InsertValue(v V) *core.Node[V] {
	n := core.NewNode(t.nextID, v)
	t.nextID++
	_ = t.Insert(n) // n is never nil here

	return n
}

// InsertValueWithID is InsertValue with a caller-chosen id. The id is
// opaque to the tree: it never participates in ordering and collisions
// with auto-assigned ids are permitted.
// Complexity: O(log n)
func (t *Tree[V]) InsertValueWithID(v V, id uint64) *core.Node[V] {
	n := core.NewNode(id, v)
	_ = t.Insert(n)

	return n
}

// retraceGrowth walks from the freshly attached node toward the root,
// updating each ancestor's balance by ±1 for the side just grown.
// The walk stops when an ancestor's balance becomes 0 (subtree height
// unchanged) or after a single rebalancing rotation, which always
// restores the pre-insertion subtree height.
func (t *Tree[V]) retraceGrowth(n *core.Node[V]) {
	child := n
	for parent := child.Parent(); parent != nil; parent = child.Parent() {
		if child == parent.Left() {
			parent.SetBalance(parent.Balance() - 1)
		} else {
			parent.SetBalance(parent.Balance() + 1)
		}

		switch b := parent.Balance(); {
		case b == 0:
			return
		case b < -1 || b > 1:
			t.rebalance2(parent)
			return
		}
		child = parent
	}
}

// rebalance2 restores the invariant at a node whose balance reached ±2,
// choosing single versus double rotation by the heavy child's sign:
// same sign or zero → single, opposite sign → double. Returns the new
// local root of the rotated subtree.
func (t *Tree[V]) rebalance2(n *core.Node[V]) *core.Node[V] {
	if n.Balance() < 0 { // left-heavy
		if n.Left().Balance() > 0 {
			return t.RotateDouble(n, core.Left)
		}

		return t.RotateSingle(n, core.Left)
	}
	// right-heavy
	if n.Right().Balance() < 0 {
		return t.RotateDouble(n, core.Right)
	}

	return t.RotateSingle(n, core.Right)
}
