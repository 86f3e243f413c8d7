package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrDecode wraps any failure to parse a record document.
var ErrDecode = errors.New("catalog: cannot decode records")

// LoadYAML decodes a YAML sequence of records from r.
// An empty document yields an empty slice.
func LoadYAML(r io.Reader) ([]*Record, error) {
	var records []*Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*Record{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return records, nil
}

// LoadFile reads a YAML record file and adds every record to a new Catalog
// built with opts.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c := New(opts...)
	if err := c.AddAll(records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
