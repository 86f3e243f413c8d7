package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvdex/bst"
)

// TestGroup_InsertFind covers case-insensitive labels, append semantics and misses.
func TestGroup_InsertFind(t *testing.T) {
	g := bst.NewGroup[string]()
	g.Insert("Fire", "Charmander")
	g.Insert("fire", "Vulpix")
	g.Insert("Water", "Squirtle")
	g.Insert("FIRE", "Charmander") // duplicates by value are kept

	assert.Equal(t, []string{"Charmander", "Vulpix", "Charmander"}, g.Find("fIrE"))
	assert.Equal(t, []string{"Squirtle"}, g.Find("water"))
	assert.Empty(t, g.Find("ghost"))
	assert.NotNil(t, g.Find("ghost"))
	assert.Equal(t, 2, g.Len())
}

// TestGroup_FindReturnsCopy verifies that callers cannot mutate stored lists.
func TestGroup_FindReturnsCopy(t *testing.T) {
	g := bst.NewGroup[int]()
	g.Insert("a", 1)
	got := g.Find("a")
	got[0] = 99
	assert.Equal(t, []int{1}, g.Find("a"))
}

// TestGroup_Counts verifies ascending-label listing with per-label sizes.
func TestGroup_Counts(t *testing.T) {
	g := bst.NewGroup[string]()
	for _, p := range [][2]string{
		{"poison", "Bulbasaur"},
		{"Grass", "Bulbasaur"},
		{"fire", "Charmander"},
		{"grass", "Oddish"},
		{"Poison", "Oddish"},
		{"water", "Squirtle"},
	} {
		g.Insert(p[0], p[1])
	}

	assert.Equal(t, []bst.LabelCount{
		{Label: "fire", Count: 1},
		{Label: "grass", Count: 2},
		{Label: "poison", Count: 2},
		{Label: "water", Count: 1},
	}, g.Counts())
	assert.Empty(t, bst.NewGroup[string]().Counts())
}

// TestNormalize covers ASCII and non-ASCII lower-casing.
func TestNormalize(t *testing.T) {
	assert.Equal(t, "fire", bst.Normalize("FiRe"))
	assert.Equal(t, "flabébé", bst.Normalize("FLABÉBÉ"))
	assert.Equal(t, "", bst.Normalize(""))
}
