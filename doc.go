// Package bintree is your in-memory toolkit for linked binary search
// trees — a shared node model, classic traversals, and a height-balanced
// (AVL) container with its rotation machinery exposed.
//
// 🚀 What is bintree?
//
//	A small, focused library that brings together:
//		• Core primitives: Node[V] with parent/child links, identity,
//		  payload, and a cached balance factor
//		• Traversals: in-order, pre-order, post-order + height, depth,
//		  and in-order stepping
//		• A balanced container: AVL insert/delete/find/min/max with
//		  single and double rotations and a full structural audit
//		• An unbalanced variant: the same descent rule with rotations
//		  switched off, for insertion-order shapes and rotation staging
//
// ✨ Why choose bintree?
//
//   - Exhaustive invariants – every mutation leaves exact balance
//     factors, symmetric links, and an accurate size counter
//   - Inspectable internals – rotations are public primitives, Check()
//     audits the whole structure, nodes expose their links
//   - One comparator per tree – a single three-way Cmp[V] bound at
//     construction, derivable for ordered types via core.Ordered()
//   - Pure Go – no cgo, no reflection
//
// Everything is organized under four subpackages:
//
//	core/     — Node[V], Cmp[V], Direction, sentinel errors
//	traverse/ — orderings, Height/Depth, Successor/Predecessor
//	avl/      — the height-balanced container and rotation primitives
//	bst/      — the non-balancing variant (strict API subset)
//
// Quick ASCII example — ascending bulk-load of 0..9:
//
//	     3
//	   /   \
//	  1     7
//	 / \   / \
//	0   2 5   8
//	     / \   \
//	    4   6   9
//
// The containers are single-owner and not safe for concurrent mutation;
// guard a shared tree with one mutex. See each package's doc.go for the
// operation contracts and the caller-side ownership rules.
//
//	go get github.com/katalvlaran/bintree
package bintree
