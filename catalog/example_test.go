package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/lvdex/catalog"
)

// Example builds a catalog and runs the basic queries.
func Example() {
	c := catalog.New()
	_ = c.Add(&catalog.Record{Name: "Bulbasaur", ID: 1, Types: []string{"grass", "poison"}, Weaknesses: []string{"fire"}})
	_ = c.Add(&catalog.Record{Name: "Charmander", ID: 4, Types: []string{"fire"}, Weaknesses: []string{"water"}})
	_ = c.Add(&catalog.Record{Name: "Oddish", ID: 43, Types: []string{"grass", "poison"}, Weaknesses: []string{"fire"}})

	if r, ok := c.FindByID(4); ok {
		fmt.Println(r.Name)
	}
	fmt.Println(c.NamesWithType("GRASS"))
	for _, r := range c.WeakTo("Fire") {
		fmt.Println(r.ID, r.Name)
	}
	fmt.Println(c.TypeCounts())
	// Output:
	// Charmander
	// [Bulbasaur Oddish]
	// 1 Bulbasaur
	// 43 Oddish
	// [{fire 1} {grass 2} {poison 2}]
}
