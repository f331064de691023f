package fixedgrid_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/fixedgrid"
)

// ExampleNew builds a 3×2 grid from its coordinates and reads it back
// through row views and the flat buffer.
func ExampleNew() {
	g, _ := fixedgrid.New(3, 2, func(r, c int) int { return 10*r + c })

	rows := g.Rows()
	fmt.Println(rows[2][1])
	fmt.Println(g.Flat())
	fmt.Print(g)

	// Output:
	// 21
	// [0 1 10 11 20 21]
	// [0, 1]
	// [10, 11]
	// [20, 21]
}

// ExampleUninit fills a grid slot by slot and commits it.
func ExampleUninit() {
	u, _ := fixedgrid.NewUninit[string](1, 2)
	_ = u.Set(0, 1, "b")
	if _, err := u.Commit(); err != nil {
		fmt.Println("commit:", err)
	}
	_ = u.Set(0, 0, "a")
	g, _ := u.Commit()
	fmt.Println(g.Row(0))

	// Output:
	// commit: fixedgrid: not every slot has been written: 1 of 2 slots missing
	// [a b]
}
