// Package dataset holds the tabular data to be validated: an ordered
// set of named columns sharing a uniform row count, with a
// well-defined missing-value sentinel.
package dataset

import "fmt"

// Column is one named, ordered sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// DataSet is a column-major table. Row indices 0..Rows()-1 are stable
// and used as error report keys. Immutable once constructed.
type DataSet struct {
	names []string
	cols  map[string][]Cell
	rows  int
}

// New builds a DataSet from ordered columns. All columns must share
// the same row count.
func New(columns []Column) (*DataSet, error) {
	d := &DataSet{cols: make(map[string][]Cell, len(columns))}
	for i, col := range columns {
		if _, dup := d.cols[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if i == 0 {
			d.rows = len(col.Cells)
		} else if len(col.Cells) != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", col.Name, len(col.Cells), d.rows)
		}
		d.names = append(d.names, col.Name)
		d.cols[col.Name] = col.Cells
	}
	return d, nil
}

// Columns returns the column names in source order.
func (d *DataSet) Columns() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Column returns the cells of a named column.
func (d *DataSet) Column(name string) ([]Cell, bool) {
	cells, ok := d.cols[name]
	return cells, ok
}

// HasColumn reports whether the data set contains the named column.
func (d *DataSet) HasColumn(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Rows returns the uniform row count.
func (d *DataSet) Rows() int {
	return d.rows
}
