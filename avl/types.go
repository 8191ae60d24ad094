// Package avl: Tree state, construction options, and sentinel errors.

package avl

import (
	"errors"

	"github.com/katalvlaran/bintree/core"
)

var (
	// ErrNilComparator is returned by New when no comparator is supplied.
	ErrNilComparator = errors.New("avl: comparator is nil")

	// ErrEmptyTree is returned by Delete, Min and Max on an empty tree.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrValueNotFound is returned by Find and DeleteValue when no node
	// holds an equal value.
	ErrValueNotFound = errors.New("avl: value not found")

	// ErrInvariant wraps every violation reported by Check.
	ErrInvariant = errors.New("avl: invariant violated")
)

// Option configures a Tree before first use.
type Option func(*options)

// options collects construction-time settings.
type options struct {
	rebalance bool
}

// WithoutRebalance disables balance bookkeeping and rotations entirely,
// turning the container into a plain binary search tree whose shape is
// dictated by insertion order. bintree/bst is a thin wrapper over this
// switch; it is also handy for staging deterministic shapes in rotation
// tests.
func WithoutRebalance() Option {
	return func(o *options) { o.rebalance = false }
}

// Tree is a height-balanced binary search tree. The zero value is not
// usable; construct with New.
type Tree[V any] struct {
	root *core.Node[V]
	size int
	cmp  core.Cmp[V]

	// nextID feeds InsertValue; owned by the instance so bulk loads are
	// deterministic and no process-wide counter exists.
	nextID uint64

	rebalance bool
}

// New returns an empty Tree bound to cmp for the lifetime of the
// instance. Returns ErrNilComparator if cmp is nil.
// Complexity: O(1)
func New[V any](cmp core.Cmp[V], opts ...Option) (*Tree[V], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	o := options{rebalance: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[V]{cmp: cmp, rebalance: o.rebalance}, nil
}
