package catalog

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by Add.
var (
	// ErrNilRecord indicates a nil *Record was passed to Add.
	ErrNilRecord = errors.New("catalog: record is nil")

	// ErrEmptyName indicates a record without a display name.
	ErrEmptyName = errors.New("catalog: record name is empty")

	// ErrDuplicateID indicates a second record with an existing id
	// while the catalog was built WithUniqueIDs.
	ErrDuplicateID = errors.New("catalog: duplicate record id")
)

// Record is one catalog entry. Treat it as immutable once added:
// every index refers to the same value.
type Record struct {
	Name       string   `yaml:"name"`
	ID         int      `yaml:"id"`
	Types      []string `yaml:"types"`
	Weaknesses []string `yaml:"weaknesses"`
	Mega       bool     `yaml:"mega"`
	Gigamax    bool     `yaml:"gigamax"`
}

// Option configures a Catalog at construction time.
type Option func(c *Catalog)

// WithLogger routes debug events (record added, record rejected) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUniqueIDs makes Add reject a record whose id is already present.
// Without it a duplicate id is accepted and the id index keeps the latest record.
func WithUniqueIDs() Option {
	return func(c *Catalog) { c.uniqueIDs = true }
}
