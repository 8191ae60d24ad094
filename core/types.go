// Package core: Node, Cmp, Direction and sentinel error declarations.
//
// This file declares the data model shared by the balanced (avl) and
// unbalanced (bst) containers. Mutating accessors live in node.go.

package core

import (
	"cmp"
	"errors"
)

// ErrNilNode indicates a nil *Node was passed to an operation that
// requires a live node.
var ErrNilNode = errors.New("core: node is nil")

// Cmp is a three-way comparator over payload values: it must return a
// negative value when a < b, zero when a == b, and a positive value when
// a > b. The comparison must define a consistent total order; each tree
// instance is bound to exactly one Cmp at construction.
type Cmp[V any] func(a, b V) int

// Ordered returns a Cmp for any naturally ordered type, backed by the
// standard library's cmp.Compare.
func Ordered[V cmp.Ordered]() Cmp[V] {
	return cmp.Compare[V]
}

// Direction names the heavy side of a subtree for rotation purposes:
// Left means the left subtree is the tall one (calling for a rightward
// rotation), Right the mirror case.
type Direction int8

const (
	// Left selects the left child / marks the left subtree as heavy.
	Left Direction = -1

	// Right selects the right child / marks the right subtree as heavy.
	Right Direction = 1
)

// Opposite returns the mirrored direction.
func (d Direction) Opposite() Direction { return -d }

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// balance factors are clamped to this closed range at assignment time;
// ±2 occurs only transiently between a retrace step and its rotation.
const (
	minBalance = -2
	maxBalance = 2
)

// Node is a single binary-tree vertex: identity, payload, links to its
// parent and children, and the cached balance factor.
//
// The zero balance/links state of a freshly constructed Node is valid for
// insertion into any container.
type Node[V any] struct {
	id      uint64
	value   V
	parent  *Node[V]
	left    *Node[V]
	right   *Node[V]
	balance int
}

// NewNode constructs a detached node carrying id and value.
// Containers auto-assign sequential ids when the caller inserts by value;
// construct nodes directly only when the identity matters to you.
func NewNode[V any](id uint64, value V) *Node[V] {
	return &Node[V]{id: id, value: value}
}
