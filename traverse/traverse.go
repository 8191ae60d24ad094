// Package traverse: linear orderings over a node reference.

package traverse

import "github.com/katalvlaran/bintree/core"

// InOrder returns left subtree, node, right subtree — ascending value
// order for a search tree. A nil n yields an empty sequence.
// Complexity: O(n) time, O(n) memory.
func InOrder[V any](n *core.Node[V]) []*core.Node[V] {
	return appendInOrder(nil, n)
}

// PreOrder returns node, left subtree, right subtree.
// A nil n yields an empty sequence.
// Complexity: O(n) time, O(n) memory.
func PreOrder[V any](n *core.Node[V]) []*core.Node[V] {
	return appendPreOrder(nil, n)
}

// PostOrder returns left subtree, right subtree, node.
// A nil n yields an empty sequence.
// Complexity: O(n) time, O(n) memory.
func PostOrder[V any](n *core.Node[V]) []*core.Node[V] {
	return appendPostOrder(nil, n)
}

// Values projects the payloads out of a node sequence, preserving order.
func Values[V any](nodes []*core.Node[V]) []V {
	vs := make([]V, len(nodes))
	for i, n := range nodes {
		vs[i] = n.Value()
	}
	return vs
}

func appendInOrder[V any](acc []*core.Node[V], n *core.Node[V]) []*core.Node[V] {
	if n == nil {
		return acc
	}
	acc = appendInOrder(acc, n.Left())
	acc = append(acc, n)
	return appendInOrder(acc, n.Right())
}

func appendPreOrder[V any](acc []*core.Node[V], n *core.Node[V]) []*core.Node[V] {
	if n == nil {
		return acc
	}
	acc = append(acc, n)
	acc = appendPreOrder(acc, n.Left())
	return appendPreOrder(acc, n.Right())
}

func appendPostOrder[V any](acc []*core.Node[V], n *core.Node[V]) []*core.Node[V] {
	if n == nil {
		return acc
	}
	acc = appendPostOrder(acc, n.Left())
	acc = appendPostOrder(acc, n.Right())
	return append(acc, n)
}
