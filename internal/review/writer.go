package review

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Annotate records status on both rows of p.
func Annotate(p Pair, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	for _, r := range p {
		r.Set(FieldStatus, string(status))
	}
	return nil
}

// Header returns the output column order: the fields of the first row of
// the first pair, with status appended once any row has been reviewed.
func (c *Collection) Header() ([]string, error) {
	if len(c.Pairs) == 0 {
		return nil, ErrEmptyCollection
	}
	header := c.Pairs[0][0].Fields()
	for _, f := range header {
		if f == FieldStatus {
			return header, nil
		}
	}
	if c.hasStatus() {
		header = append(header, FieldStatus)
	}
	return header, nil
}

func (c *Collection) hasStatus() bool {
	for _, r := range c.Rows() {
		if r.Has(FieldStatus) {
			return true
		}
	}
	return false
}

// Rows returns every row in output order: pair rows in collection order,
// then excluded rows in source order.
func (c *Collection) Rows() []*Row {
	rows := make([]*Row, 0, 2*len(c.Pairs)+len(c.Excluded))
	for _, p := range c.Pairs {
		rows = append(rows, p[0], p[1])
	}
	return append(rows, c.Excluded...)
}

// Save rewrites path with every row of c. The file is truncated first;
// the parent directory is created when missing.
func Save(c *Collection, path string) error {
	header, err := c.Header()
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return &PersistenceError{Path: path, Err: err}
	}
	record := make([]string, len(header))
	for _, r := range c.Rows() {
		for i, name := range header {
			record[i] = r.Get(name)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return &PersistenceError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &PersistenceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
