package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdex/builder"
	"github.com/katalvlaran/lvdex/core"
	"github.com/katalvlaran/lvdex/prim_kruskal"
)

// buildRandomCast creates n vertices with random episode sets over 1..20 and connects them completely.
func buildRandomCast(b *testing.B, n int) *core.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	members := make([]builder.Member, n)
	for i := range members {
		eps := make([]int, 0, 8)
		for e := 1; e <= 20; e++ {
			if r.Intn(3) == 0 {
				eps = append(eps, e)
			}
		}
		members[i] = builder.Member{Name: fmt.Sprintf("V%d", i), Episodes: eps}
	}
	g, err := builder.BuildGraph(builder.Cast(members), builder.Complete())
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkPrim measures Prim on a complete graph of 200 vertices.
func BenchmarkPrim(b *testing.B) {
	g := buildRandomCast(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "V0")
	}
}

// BenchmarkKruskal measures Kruskal on the same graph.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandomCast(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}
