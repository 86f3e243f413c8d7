package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvdex/bfs"
	"github.com/katalvlaran/lvdex/builder"
)

// ExampleHopPath finds the fewest-hop route between two characters.
func ExampleHopPath() {
	g, err := builder.Saga()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := bfs.HopPath(g, "Darth Vader", "Rey")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [Darth Vader Rey]
}
