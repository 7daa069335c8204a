// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table loads small comma-separated data sets into ordered,
// named columns.
//
// Only plain CSV is supported: one header record followed by data
// records of the same width. Cells are kept as strings; a column
// whose every cell parses as a float64 is numeric and can also be
// read as a []float64.
package table // import "github.com/probkit/probkit/table"

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoColumn is returned when a column name is not in the
	// table's header.
	ErrNoColumn = errors.New("no such column")

	// ErrNotNumeric is returned when a numeric view is requested
	// of a column with non-numeric cells.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrMalformed is returned for input that is not a
	// rectangular table with a unique, non-empty header.
	ErrMalformed = errors.New("malformed table")
)

// DataCsv is a rectangular table of named columns. It is immutable;
// operations that reorder rows return a new DataCsv.
type DataCsv struct {
	header []string
	index  map[string]int
	cols   []column
}

type column struct {
	cells []string
	nums  []float64 // nil if any cell is not a number
}

// Load reads a table from r.
func Load(r io.Reader) (*DataCsv, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "reading csv"), ErrMalformed)
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMalformed, "missing header")
	}
	header := records[0]
	rows := records[1:]

	t := &DataCsv{
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
		cols:   make([]column, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Wrapf(ErrMalformed, "empty name for column %d", i+1)
		}
		if _, ok := t.index[name]; ok {
			return nil, errors.Wrapf(ErrMalformed, "duplicate column %q", name)
		}
		t.header[i] = name
		t.index[name] = i
		t.cols[i].cells = make([]string, len(rows))
	}
	for r, rec := range rows {
		for i, cell := range rec {
			t.cols[i].cells[r] = strings.TrimSpace(cell)
		}
	}
	for i := range t.cols {
		t.cols[i].parse()
	}
	return t, nil
}

// LoadFile reads a table from the named file.
func LoadFile(path string) (*DataCsv, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}

func (c *column) parse() {
	nums := make([]float64, len(c.cells))
	for i, cell := range c.cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return
		}
		nums[i] = v
	}
	c.nums = nums
}

// Header returns the column names in order.
func (t *DataCsv) Header() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of data rows.
func (t *DataCsv) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].cells)
}

func (t *DataCsv) col(name string) (*column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoColumn, "%q", name)
	}
	return &t.cols[i], nil
}

// Strings returns the cells of the named column.
func (t *DataCsv) Strings(name string) ([]string, error) {
	c, err := t.col(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), c.cells...), nil
}

// IsNumeric reports whether every cell of the named column is a
// number. Unknown columns are not numeric.
func (t *DataCsv) IsNumeric(name string) bool {
	c, err := t.col(name)
	return err == nil && c.nums != nil
}

// Floats returns the values of the named numeric column.
func (t *DataCsv) Floats(name string) ([]float64, error) {
	c, err := t.col(name)
	if err != nil {
		return nil, err
	}
	if c.nums == nil {
		return nil, errors.Wrapf(ErrNotNumeric, "%q", name)
	}
	return append([]float64(nil), c.nums...), nil
}

// Row returns the cells of row i in header order.
func (t *DataCsv) Row(i int) []string {
	row := make([]string, len(t.cols))
	for j := range t.cols {
		row[j] = t.cols[j].cells[i]
	}
	return row
}

// SortBy returns a copy of t with its rows stably sorted by the named
// column. Numeric columns sort numerically and other columns sort
// lexically.
func (t *DataCsv) SortBy(name string, descending bool) (*DataCsv, error) {
	key, err := t.col(name)
	if err != nil {
		return nil, err
	}
	perm := make([]int, t.Len())
	for i := range perm {
		perm[i] = i
	}
	less := func(a, b int) bool { return key.cells[a] < key.cells[b] }
	if key.nums != nil {
		less = func(a, b int) bool { return key.nums[a] < key.nums[b] }
	}
	sort.SliceStable(perm, func(i, j int) bool {
		if descending {
			return less(perm[j], perm[i])
		}
		return less(perm[i], perm[j])
	})

	out := &DataCsv{header: t.header, index: t.index, cols: make([]column, len(t.cols))}
	for j, c := range t.cols {
		nc := column{cells: make([]string, len(perm))}
		if c.nums != nil {
			nc.nums = make([]float64, len(perm))
		}
		for i, p := range perm {
			nc.cells[i] = c.cells[p]
			if c.nums != nil {
				nc.nums[i] = c.nums[p]
			}
		}
		out.cols[j] = nc
	}
	return out, nil
}
