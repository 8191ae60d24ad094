// Package avl: structural audit.
//
// Check is the test anchor for every invariant the container promises;
// it recomputes heights from scratch instead of trusting cached factors.

package avl

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Check walks the whole tree and verifies, for every reachable node:
//
//   - the parent link matches the node it was reached from;
//   - the search order holds against all transitive bounds
//     (left subtree strictly less, right subtree not less);
//   - the cached balance factor equals height(right) − height(left)
//     and lies in {-1, 0, 1} — skipped when rebalancing is disabled,
//     since a plain BST does not maintain factors;
//   - the size counter equals the number of reachable nodes.
//
// Returns nil on success or the first violation wrapped in ErrInvariant.
// Complexity: O(n)
func (t *Tree[V]) Check() error {
	count := 0
	if _, err := t.checkNode(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size counter %d, reachable nodes %d", ErrInvariant, t.size, count)
	}

	return nil
}

// checkNode validates the subtree rooted at n and returns its height.
// within accumulates the ordering bounds inherited from all ancestors.
func (t *Tree[V]) checkNode(n, parent *core.Node[V], within func(V) bool, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.Parent() != parent {
		return 0, fmt.Errorf("%w: node %d has a wrong parent link", ErrInvariant, n.ID())
	}
	if within != nil && !within(n.Value()) {
		return 0, fmt.Errorf("%w: node %d out of search order", ErrInvariant, n.ID())
	}
	*count++

	v := n.Value()
	leftBound := func(x V) bool { return t.cmp(x, v) < 0 && (within == nil || within(x)) }
	rightBound := func(x V) bool { return t.cmp(x, v) >= 0 && (within == nil || within(x)) }

	hl, err := t.checkNode(n.Left(), n, leftBound, count)
	if err != nil {
		return 0, err
	}
	hr, err := t.checkNode(n.Right(), n, rightBound, count)
	if err != nil {
		return 0, err
	}

	if t.rebalance {
		if b := n.Balance(); b != hr-hl {
			return 0, fmt.Errorf("%w: node %d caches balance %d, structure says %d", ErrInvariant, n.ID(), b, hr-hl)
		}
		if b := n.Balance(); b < -1 || b > 1 {
			return 0, fmt.Errorf("%w: node %d balance %d out of range", ErrInvariant, n.ID(), b)
		}
	}

	if hl > hr {
		return hl + 1, nil
	}

	return hr + 1, nil
}
