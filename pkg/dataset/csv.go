package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV loads a data set from a CSV file. Only .csv files are
// supported.
func ReadCSV(path string) (*DataSet, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		return nil, fmt.Errorf("unsupported data set file type %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data set file: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSVFrom(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return ds, nil
}

// ReadCSVFrom reads a data set in CSV form. The first record is the
// header row naming the columns; empty cells become the missing-value
// sentinel.
func ReadCSVFrom(r io.Reader) (*DataSet, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data set has no header row")
	}

	header := records[0]
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name, Cells: make([]Cell, 0, len(records)-1)}
	}
	for _, record := range records[1:] {
		for i := range columns {
			if record[i] == "" {
				columns[i].Cells = append(columns[i].Cells, Missing())
			} else {
				columns[i].Cells = append(columns[i].Cells, Str(record[i]))
			}
		}
	}
	return New(columns)
}
