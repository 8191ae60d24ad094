// Package traverse provides stateless traversal utilities over core.Node
// references: the three classic linear orderings, structural metrics, and
// in-order neighbor stepping.
//
// Key features:
//   - InOrder / PreOrder / PostOrder: materialized node sequences; InOrder
//     of a binary search tree yields non-decreasing value order.
//   - Height(n): nodes on the longest downward path, leaf = 1, nil = 0.
//   - Depth(n): 1-based distance from n up to its root, root = 1.
//   - Successor / Predecessor: in-order neighbors via parent links.
//   - Values: payload projection of a node sequence.
//
// All functions accept a possibly-nil node, standing for an empty
// (sub)tree, and return empty results for it. None of them mutate the
// tree; the containers in bintree/avl delegate here instead of keeping
// private traversal code.
//
// Complexity:
//
//   - Time:   O(n) for the orderings and Height, O(h) for Depth and the
//     stepping helpers (h = tree height).
//   - Memory: O(n) for the materialized sequences, O(h) recursion otherwise.
package traverse
