package review

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Collection is the ordered set of reviewable pairs.
type Collection struct {
	// Pairs are ordered by the first occurrence of each case id in the source.
	Pairs []Pair

	// Excluded holds rows whose case id did not occur exactly twice, in
	// source order. They are never reviewed but are written back on save.
	Excluded []*Row
}

// Len returns the number of pairs.
func (c *Collection) Len() int {
	return len(c.Pairs)
}

// ExcludedIDs returns the distinct case ids that were left out of review.
func (c *Collection) ExcludedIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, r := range c.Excluded {
		if !seen[r.CaseID()] {
			seen[r.CaseID()] = true
			ids = append(ids, r.CaseID())
		}
	}
	return ids
}

// Counts returns how many pairs carry each verdict.
func (c *Collection) Counts() (correct, wrong int) {
	for _, p := range c.Pairs {
		switch s, _ := p.Status(); s {
		case StatusCorrect:
			correct++
		case StatusWrong:
			wrong++
		}
	}
	return correct, wrong
}

// Load reads a CSV file and builds its pair collection.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		var dse *DataSourceError
		if errors.As(err, &dse) {
			dse.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Read parses CSV records from r, groups them by case id, and keeps only the
// ids with exactly two rows.
func Read(r io.Reader) (*Collection, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataSourceError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &DataSourceError{Err: fmt.Errorf("failed to read header: %w", err)}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	if err := checkHeader(header); err != nil {
		return nil, &DataSourceError{Err: err}
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &DataSourceError{Err: fmt.Errorf("failed to read records: %w", err)}
	}

	var order []string
	groups := make(map[string][]*Row)
	var rows []*Row
	for _, rec := range records {
		values := make(map[string]string, len(header))
		for i, name := range header {
			values[name] = rec[i]
		}
		row := NewRow(header, values)
		rows = append(rows, row)

		id := row.CaseID()
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], row)
	}

	c := &Collection{}
	for _, id := range order {
		if g := groups[id]; len(g) == 2 {
			c.Pairs = append(c.Pairs, Pair{g[0], g[1]})
		}
	}
	for _, row := range rows {
		if len(groups[row.CaseID()]) != 2 {
			c.Excluded = append(c.Excluded, row)
		}
	}
	return c, nil
}

func checkHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}
	for _, required := range []string{FieldCaseID, FieldFrontImage} {
		if !seen[required] {
			return fmt.Errorf("missing required column %q", required)
		}
	}
	return nil
}
