// Package avl implements a height-balanced (AVL) binary search tree over
// core.Node references, maintaining the balance invariant through single
// and double rotations after every insertion and deletion.
//
// Key features:
//   - New(cmp, opts...): one three-way comparator per tree instance
//   - Insert / InsertValue / InsertValueWithID: duplicates are accepted
//     and placed to the right (not-less-goes-right)
//   - Delete / DeleteValue: leaf, one-child and two-child cases with
//     upward retrace and cascading rotations
//   - Find / Min / Max: O(h) descent, explicit not-found sentinels
//   - FromSlice: clear-and-bulk-load with sequential ids from 0
//   - RotateSingle / RotateDouble: rotation primitives exposed publicly,
//     affected balance factors recomputed from structure
//   - Check: full structural audit (ordering, balance, links, size)
//   - WithoutRebalance(): the single switch powering bintree/bst
//
// Invariants after every public mutating operation:
//
//   - BST ordering: left subtree < node ≤ right subtree
//   - every node's balance factor equals height(right) − height(left)
//     and lies in {-1, 0, 1}
//   - parent/child links are symmetric; the root has no parent
//   - Len() equals the number of nodes reachable from Root()
//
// Two-child deletion keeps the target node object in place and moves the
// in-order successor's id and value into it; a retained reference to the
// "deleted" node will observe the successor's identity afterward. This is
// the classic technique, preserved deliberately — see Delete.
//
// The tree is not safe for concurrent mutation; wrap it in a single
// mutual-exclusion guard if shared across goroutines. Passing a node that
// does not belong to the tree to Delete, or reusing an un-Reset node
// across containers, corrupts the structure — that contract is the
// caller's to uphold and is not guarded.
//
// Complexity:
//
//   - Time:   O(log n) descent for Insert/Delete/Find/Min/Max
//     (height is bounded by the balance invariant), O(n) for
//     FromSlice and Check.
//   - Memory: O(1) per mutation beyond the inserted node itself.
//
// Errors:
//
//   - ErrNilComparator       if New is given a nil Cmp.
//   - core.ErrNilNode        if Insert/Delete is given a nil node.
//   - ErrEmptyTree           for Delete/Min/Max on an empty tree.
//   - ErrValueNotFound       for Find/DeleteValue misses.
//   - ErrInvariant           wrapping every Check violation report.
package avl
