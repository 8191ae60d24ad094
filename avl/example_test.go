package avl_test

import (
	"fmt"

	"github.com/katalvlaran/bintree/avl"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/traverse"
)

// ExampleTree_FromSlice demonstrates the deterministic bulk-load shape
// for ascending sequential input.
func ExampleTree_FromSlice() {
	tr, _ := avl.New(core.Ordered[int]())
	tr.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	root := tr.Root()
	fmt.Println("root:", root.Value())
	fmt.Println("left:", root.Left().Value())
	fmt.Println("right:", root.Right().Value())
	// Output:
	// root: 3
	// left: 1
	// right: 7
}

// ExampleTree_InsertValue shows that in-order traversal of the balanced
// tree yields ascending values regardless of insertion order.
func ExampleTree_InsertValue() {
	tr, _ := avl.New(core.Ordered[int]())
	for _, v := range []int{42, 7, 19, 3, 64, 28} {
		tr.InsertValue(v)
	}

	fmt.Println(traverse.Values(traverse.InOrder(tr.Root())))
	fmt.Println("height:", tr.Height())
	// Output:
	// [3 7 19 28 42 64]
	// height: 3
}

// ExampleTree_DeleteValue removes a value and shows the tree stays
// ordered and balanced.
func ExampleTree_DeleteValue() {
	tr, _ := avl.New(core.Ordered[int]())
	tr.FromSlice([]int{5, 2, 8, 1, 3})

	if err := tr.DeleteValue(2); err != nil {
		fmt.Println("delete:", err)
		return
	}

	fmt.Println(traverse.Values(traverse.InOrder(tr.Root())))
	fmt.Println("valid:", tr.Check() == nil)
	// Output:
	// [1 3 5 8]
	// valid: true
}
