package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdex/catalog"
)

var errNoData = errors.New("no record file: pass --data or set data in the config file")

func newDexCmd(a *app) *cobra.Command {
	var dataPath string
	dex := &cobra.Command{
		Use:   "dex",
		Short: "Query a record catalog loaded from YAML",
	}
	dex.PersistentFlags().StringVar(&dataPath, "data", "", "YAML record file (overrides config)")

	load := func() (*catalog.Catalog, error) {
		path := dataPath
		if path == "" {
			path = a.cfg.Data
		}
		if path == "" {
			return nil, errNoData
		}
		c, err := catalog.LoadFile(path, catalog.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.log.Info("catalog loaded", "path", path, "records", c.Len())

		return c, nil
	}

	var order string
	list := &cobra.Command{
		Use:   "list",
		Short: "List records by id, by name, or in name-index level order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			var rs []*catalog.Record
			switch order {
			case "id":
				rs = c.ListByID()
			case "name":
				rs = c.ListByName()
			case "level":
				rs = c.ListByNameLevelOrder()
			default:
				return fmt.Errorf("unknown order %q (id|name|level)", order)
			}
			printRecords(cmd.OutOrStdout(), rs)
			return nil
		},
	}
	list.Flags().StringVar(&order, "by", "id", "Ordering: id|name|level")

	find := &cobra.Command{
		Use:   "find <id>",
		Short: "Look up a record by numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id %q: %w", args[0], err)
			}
			c, err := load()
			if err != nil {
				return err
			}
			r, ok := c.FindByID(id)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no record with id %d\n", id)
				return nil
			}
			printRecords(cmd.OutOrStdout(), []*catalog.Record{r})
			return nil
		},
	}

	search := &cobra.Command{
		Use:   "search <text>",
		Short: "Case-insensitive substring search on names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), c.SearchName(args[0]))
			return nil
		},
	}

	typ := &cobra.Command{
		Use:   "type <tag>",
		Short: "Names of records carrying a type tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			for _, n := range c.NamesWithType(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	weak := &cobra.Command{
		Use:   "weak <tag>",
		Short: "Records weak to a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), c.WeakTo(args[0]))
			return nil
		},
	}

	counts := &cobra.Command{
		Use:   "counts",
		Short: "Per-type record counts and flag totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, lc := range c.TypeCounts() {
				fmt.Fprintf(out, "%-10s %d\n", lc.Label, lc.Count)
			}
			fmt.Fprintf(out, "mega: %d\ngigamax: %d\n", c.CountMega(), c.CountGigamax())
			return nil
		},
	}

	dex.AddCommand(list, find, search, typ, weak, counts)

	return dex
}

func printRecords(w io.Writer, rs []*catalog.Record) {
	for _, r := range rs {
		fmt.Fprintf(w, "#%03d %s %v\n", r.ID, r.Name, r.Types)
	}
}
