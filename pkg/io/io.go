package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table holds a fully materialized tabular file: a header and one row of
// raw string cells per record. The matrices built from it live in memory
// anyway, so the table does too; there is no streaming mode.
type Table struct {
	Columns []string
	Rows    [][]string

	columnIndex map[string]int
}

// Load reads a CSV table from a file.
func Load(path string) (*Table, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer inputFile.Close()

	t, err := Read(inputFile)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return t, nil
}

// Read reads a CSV table from r. The first record is expected to be a
// header. Records may be shorter than the header; the missing cells are
// simply absent from the table.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading data header: %w", err)
	}

	t := &Table{Columns: header, columnIndex: make(map[string]int, len(header))}
	for i, col := range header {
		t.columnIndex[col] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading data record: %w", err)
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// Len returns the number of data records.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the position of the named column in the header.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.columnIndex[name]
	return i, ok
}

// Field returns the raw cell of the named column in the given row. The
// second result is false when the column is not part of the table or the
// record is too short to hold it.
func (t *Table) Field(row int, name string) (string, bool) {
	c, ok := t.columnIndex[name]
	if !ok || c >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][c], true
}
