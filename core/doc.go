// Package core defines the shared binary-tree Node type, the comparator
// contract, and the rotation Direction used by every container in bintree.
//
// A Node[V] is a plain data holder: an identity token, a payload value,
// links to its parent and two children, and a cached balance factor
// (height(right) − height(left)). Nodes carry no behavior beyond local
// accessors; the containers in bintree/avl and bintree/bst own the node
// graph transitively from their root and are responsible for keeping
// parent/child links and balance factors consistent.
//
// Ordering is supplied per container instance through a Cmp[V] three-way
// comparator; Ordered() derives one for any naturally ordered type.
//
// Ownership rules:
//
//   - A node belongs to at most one container at a time.
//   - A node removed from a container must be Reset() before it may be
//     inserted into another one; stale links corrupt the receiving tree.
//   - Handing a container a node it never produced is undefined behavior
//     by contract — the accessors cannot detect it.
//
// Errors:
//
//	ErrNilNode - a nil node was passed to an operation requiring one.
package core
