package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvdex/bst"
)

// Catalog is the multi-index facade over an append-only record list.
type Catalog struct {
	all    []*Record
	byID   *bst.Tree[int, *Record]
	byName *bst.Tree[string, *Record]
	byType *bst.Group[*Record]

	uniqueIDs bool
	log       *slog.Logger
}

// New returns an empty Catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		byID:   bst.NewTree(func(r *Record) int { return r.ID }),
		byName: bst.NewTree(func(r *Record) string { return bst.Normalize(r.Name) }),
		byType: bst.NewGroup[*Record](),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add appends r to the catalog and files it in every index.
// All checks run before the first mutation, so a rejected record
// leaves the catalog untouched.
func (c *Catalog) Add(r *Record) error {
	if err := c.validate(r); err != nil {
		c.log.Debug("record rejected", "error", err)
		return err
	}

	c.all = append(c.all, r)
	c.byID.Insert(r)
	c.byName.Insert(r)
	for _, t := range r.Types {
		c.byType.Insert(t, r)
	}
	c.log.Debug("record added", "id", r.ID, "name", r.Name, "types", len(r.Types))

	return nil
}

// AddAll adds records in order and stops at the first rejection.
// Records before the failing one stay in the catalog.
func (c *Catalog) AddAll(records []*Record) error {
	for i, r := range records {
		if err := c.Add(r); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}

func (c *Catalog) validate(r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: id %d", ErrEmptyName, r.ID)
	}
	if c.uniqueIDs {
		if prev, ok := c.byID.Find(r.ID); ok {
			return fmt.Errorf("%w: %d already held by %q", ErrDuplicateID, r.ID, prev.Name)
		}
	}

	return nil
}

// Len returns the number of records in the flat list.
func (c *Catalog) Len() int { return len(c.all) }

// Records returns the flat list in insertion order.
func (c *Catalog) Records() []*Record {
	out := make([]*Record, len(c.all))
	copy(out, c.all)

	return out
}

// FindByID returns the record with the given numeric id.
func (c *Catalog) FindByID(id int) (*Record, bool) {
	return c.byID.Find(id)
}

// FindByName returns the record whose name equals name, ignoring case.
func (c *Catalog) FindByName(name string) (*Record, bool) {
	return c.byName.Find(bst.Normalize(name))
}

// SearchName returns every record whose name contains text, ignoring case,
// in ascending name order. It scans the whole name index.
func (c *Catalog) SearchName(text string) []*Record {
	text = bst.Normalize(text)

	return c.byName.Match(func(r *Record) bool {
		return strings.Contains(bst.Normalize(r.Name), text)
	})
}

// ListByID returns all indexed records by ascending id.
func (c *Catalog) ListByID() []*Record { return c.byID.InOrder() }

// ListByName returns all indexed records by ascending lower-cased name.
func (c *Catalog) ListByName() []*Record { return c.byName.InOrder() }

// ListByNameLevelOrder returns the name index breadth-first.
// The sequence mirrors the index shape and therefore the insertion history.
func (c *Catalog) ListByNameLevelOrder() []*Record { return c.byName.LevelOrder() }

// NamesWithType returns the names of records tagged with tag, ignoring case,
// in insertion order. Only exact tag matches count.
func (c *Catalog) NamesWithType(tag string) []string {
	rs := c.byType.Find(tag)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}

	return out
}

// WeakTo returns, in insertion order, every record listing tag among its
// weaknesses, ignoring case.
func (c *Catalog) WeakTo(tag string) []*Record {
	tag = bst.Normalize(tag)
	out := []*Record{}
	for _, r := range c.all {
		for _, w := range r.Weaknesses {
			if bst.Normalize(w) == tag {
				out = append(out, r)
				break
			}
		}
	}

	return out
}

// TypeCounts returns (type, record count) pairs by ascending type.
func (c *Catalog) TypeCounts() []bst.LabelCount { return c.byType.Counts() }

// CountMega returns the number of records with the Mega flag set.
func (c *Catalog) CountMega() int {
	return c.count(func(r *Record) bool { return r.Mega })
}

// CountGigamax returns the number of records with the Gigamax flag set.
func (c *Catalog) CountGigamax() int {
	return c.count(func(r *Record) bool { return r.Gigamax })
}

func (c *Catalog) count(flag func(*Record) bool) int {
	n := 0
	for _, r := range c.all {
		if flag(r) {
			n++
		}
	}

	return n
}
