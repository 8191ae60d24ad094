// SPDX-License-Identifier: MIT
// Package avl_test: differential testing against a third-party AVL tree.
//
// The same fixed-seed operation sequences are applied to our container
// and to gods' avltree; any divergence in size or in-order contents is a
// bug on our side. Values are kept distinct because gods' Put replaces on
// equal keys while we keep duplicates.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/avl"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/traverse"
)

// assertMatchesReference compares size and ascending contents.
func assertMatchesReference(t *testing.T, tr *avl.Tree[int], ref *avltree.Tree) {
	t.Helper()
	require.Equal(t, ref.Size(), tr.Len())

	got := traverse.Values(traverse.InOrder(tr.Root()))
	keys := ref.Keys()
	require.Len(t, got, len(keys))
	for i, k := range keys {
		assert.Equal(t, k.(int), got[i], "in-order position %d", i)
	}
}

func TestCrossCheck_InsertOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr, err := avl.New(core.Ordered[int]())
	require.NoError(t, err)
	ref := avltree.NewWithIntComparator()

	for _, v := range rng.Perm(1000) {
		tr.InsertValue(v)
		ref.Put(v, v)
	}

	require.NoError(t, tr.Check())
	assertMatchesReference(t, tr, ref)
}

func TestCrossCheck_InsertDeleteChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tr, err := avl.New(core.Ordered[int]())
	require.NoError(t, err)
	ref := avltree.NewWithIntComparator()

	const n = 600
	for _, v := range rng.Perm(n) {
		tr.InsertValue(v)
		ref.Put(v, v)
	}

	// Remove a random two thirds, comparing as we go.
	for i, v := range rng.Perm(n) {
		if v%3 == 0 {
			continue
		}
		require.NoError(t, tr.DeleteValue(v))
		ref.Remove(v)
		if i%50 == 0 {
			require.NoError(t, tr.Check())
			assertMatchesReference(t, tr, ref)
		}
	}

	require.NoError(t, tr.Check())
	assertMatchesReference(t, tr, ref)
}

func TestCrossCheck_Interleaved(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr, err := avl.New(core.Ordered[int]())
	require.NoError(t, err)
	ref := avltree.NewWithIntComparator()

	live := make(map[int]bool)
	for op := 0; op < 3000; op++ {
		v := rng.Intn(400)
		if live[v] {
			require.NoError(t, tr.DeleteValue(v))
			ref.Remove(v)
			delete(live, v)
		} else {
			tr.InsertValue(v)
			ref.Put(v, v)
			live[v] = true
		}
	}

	require.NoError(t, tr.Check())
	assertMatchesReference(t, tr, ref)
}
