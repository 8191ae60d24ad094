// SPDX-License-Identifier: MIT
// Package traverse_test verifies the linear orderings, structural
// metrics, and in-order stepping against a hand-linked fixture tree.

package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/traverse"
)

// fixture builds this shape by hand, ids equal to values:
//
//	    4
//	   / \
//	  2   6
//	 / \   \
//	1   3   7
func fixture() map[int]*core.Node[int] {
	ns := make(map[int]*core.Node[int])
	for _, v := range []int{1, 2, 3, 4, 6, 7} {
		ns[v] = core.NewNode(uint64(v), v)
	}
	link := func(p, l, r int) {
		if l != 0 {
			ns[p].SetLeft(ns[l])
			ns[l].SetParent(ns[p])
		}
		if r != 0 {
			ns[p].SetRight(ns[r])
			ns[r].SetParent(ns[p])
		}
	}
	link(4, 2, 6)
	link(2, 1, 3)
	link(6, 0, 7)

	return ns
}

func TestOrderings(t *testing.T) {
	ns := fixture()

	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, traverse.Values(traverse.InOrder(ns[4])))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 7}, traverse.Values(traverse.PreOrder(ns[4])))
	assert.Equal(t, []int{1, 3, 2, 7, 6, 4}, traverse.Values(traverse.PostOrder(ns[4])))

	// Subtree traversal sees only the subtree.
	assert.Equal(t, []int{1, 2, 3}, traverse.Values(traverse.InOrder(ns[2])))
}

func TestOrderings_Empty(t *testing.T) {
	assert.Empty(t, traverse.InOrder[int](nil))
	assert.Empty(t, traverse.PreOrder[int](nil))
	assert.Empty(t, traverse.PostOrder[int](nil))
	assert.Empty(t, traverse.Values[int](nil))
}

func TestHeight(t *testing.T) {
	ns := fixture()

	assert.Equal(t, 0, traverse.Height[int](nil))
	assert.Equal(t, 1, traverse.Height(ns[1]), "a leaf has height 1")
	assert.Equal(t, 2, traverse.Height(ns[2]))
	assert.Equal(t, 2, traverse.Height(ns[6]))
	assert.Equal(t, 3, traverse.Height(ns[4]))
}

func TestDepth(t *testing.T) {
	ns := fixture()

	assert.Equal(t, 0, traverse.Depth[int](nil))
	assert.Equal(t, 1, traverse.Depth(ns[4]), "the root has depth 1")
	assert.Equal(t, 2, traverse.Depth(ns[2]))
	assert.Equal(t, 3, traverse.Depth(ns[7]))
}

// TestStepping verifies Successor/Predecessor agree with the in-order
// sequence in both directions, including the nil ends.
func TestStepping(t *testing.T) {
	ns := fixture()
	order := traverse.InOrder(ns[4])
	require.Len(t, order, 6)

	for i, n := range order {
		if i+1 < len(order) {
			assert.Same(t, order[i+1], traverse.Successor(n))
		}
		if i > 0 {
			assert.Same(t, order[i-1], traverse.Predecessor(n))
		}
	}
	assert.Nil(t, traverse.Successor(order[len(order)-1]))
	assert.Nil(t, traverse.Predecessor(order[0]))
	assert.Nil(t, traverse.Successor[int](nil))
	assert.Nil(t, traverse.Predecessor[int](nil))
}
