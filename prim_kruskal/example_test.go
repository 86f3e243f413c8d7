package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvdex/builder"
	"github.com/katalvlaran/lvdex/prim_kruskal"
)

// ExamplePrim grows a spanning tree over the saga fixture.
func ExamplePrim() {
	g, err := builder.Saga()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mst, total, err := prim_kruskal.Prim(g, "C-3PO")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(mst), total)
	fmt.Println(mst[0].From, "->", mst[0].To, mst[0].Weight)
	// Output:
	// 11 17
	// C-3PO -> BB-8 3
}
