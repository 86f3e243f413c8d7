package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdex/bfs"
	"github.com/katalvlaran/lvdex/builder"
	"github.com/katalvlaran/lvdex/core"
	"github.com/katalvlaran/lvdex/dijkstra"
	"github.com/katalvlaran/lvdex/prim_kruskal"
)

func newSagaCmd(a *app) *cobra.Command {
	saga := &cobra.Command{
		Use:   "saga",
		Short: "Query the shared-episode graph of the saga fixture",
	}

	load := func() (*core.Graph, error) {
		g, err := builder.Saga()
		if err != nil {
			return nil, err
		}
		a.log.Debug("saga graph built", "vertices", g.VertexCount(), "edges", g.EdgeCount())

		return g, nil
	}

	var root, method string
	mst := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			edges, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithRoot(root),
			))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range edges {
				fmt.Fprintf(out, "%s -- %s (%d)\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "edges: %d total: %d\n", len(edges), total)
			return nil
		},
	}
	mst.Flags().StringVar(&root, "root", "C-3PO", "Start vertex (prim)")
	mst.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "prim|kruskal")

	path := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Fewest-hop path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			p, err := bfs.HopPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			printPath(cmd, p)
			return nil
		},
	}

	strong := &cobra.Command{
		Use:   "strong <from> <to>",
		Short: "Strongest path (sum of 1/shared episodes)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			p, cost, err := dijkstra.StrongestPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			printPath(cmd, p)
			if len(p) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "cost: %.3f\n", cost)
			}
			return nil
		},
	}

	maxPairs := &cobra.Command{
		Use:   "max",
		Short: "Pairs sharing the most episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			w, pairs, err := g.MaxWeightPairs()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shared episodes: %d\n", w)
			for _, e := range pairs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -- %s\n", e.From, e.To)
			}
			return nil
		},
	}

	episodes := &cobra.Command{
		Use:   "episodes <n>",
		Short: "Characters appearing in exactly n episodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n %q: %w", args[0], err)
			}
			g, err := load()
			if err != nil {
				return err
			}
			for _, id := range g.VerticesWithEpisodeCount(n) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cast := &cobra.Command{
		Use:   "cast",
		Short: "List every character with its episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			for _, id := range g.Vertices() {
				v, err := g.Vertex(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s %d %v\n", id, v.EpisodeCount(), v.Episodes())
			}
			return nil
		},
	}

	saga.AddCommand(cast, mst, path, strong, maxPairs, episodes)

	return saga
}

func printPath(cmd *cobra.Command, p []string) {
	if len(p) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p, " -> "))
}
