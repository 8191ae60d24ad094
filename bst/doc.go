// Package bst provides a plain (non-balancing) binary search tree: the
// same node model, comparator contract and descent rule as bintree/avl,
// with rebalancing switched off.
//
// The container is a thin wrapper over avl.Tree constructed with
// avl.WithoutRebalance() — rebalancing is a single boolean decision, not
// an open polymorphic capability, so no interface dispatch is involved.
// Its shape is exactly the insertion order's: useful when the input order
// already yields an acceptable tree, and as the deterministic staging
// ground for rotation tests.
//
// The API is a strict subset of the balanced container's; traversal goes
// through bintree/traverse with the Root() reference, as everywhere else.
//
// Errors: the avl and core sentinels pass through unchanged
// (core.ErrNilNode, avl.ErrEmptyTree, avl.ErrValueNotFound).
package bst
