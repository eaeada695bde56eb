package unionfind_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/partition/unionfind"
)

// ExamplePartition_Blocks merges three pairs out of a six-element universe
// and enumerates the resulting classes. Representatives are always the
// smallest index in their class.
func ExamplePartition_Blocks() {
	// 1. Construct a partition of {0, …, 5}, all singletons.
	p, err := unionfind.New(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Record three equivalences.
	p.Union(4, 1)
	p.Union(2, 5)
	p.Union(1, 2)

	// 3. Enumerate the classes in ascending representative order.
	blocks := p.Blocks()
	roots := make([]int, 0, len(blocks))
	for r := range blocks {
		roots = append(roots, r)
	}
	sort.Ints(roots)
	for _, r := range roots {
		fmt.Printf("%d: %v\n", r, blocks[r])
	}
	// Output:
	// 0: [0]
	// 1: [1 2 4 5]
	// 3: [3]
}

// ExamplePartition_Find shows that the representative stays the minimum
// index of the class as merges accumulate.
func ExamplePartition_Find() {
	p, _ := unionfind.New(5)

	p.Union(3, 4)
	fmt.Println(p.Find(4)) // class {3,4} is represented by 3

	p.Union(0, 3)
	fmt.Println(p.Find(4)) // now {0,3,4}, represented by 0
	// Output:
	// 3
	// 0
}

// ExamplePartition_String renders the whole partition at a glance.
func ExamplePartition_String() {
	p, _ := unionfind.New(6)
	p.Union(4, 1)
	p.Union(2, 5)
	p.Union(1, 2)

	fmt.Println(p)
	// Output: {0}{1 2 4 5}{3}
}
