package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a raw tabular export: a normalized header plus string rows.
// Column names are lowercased, trimmed, and spaces become underscores so
// downstream code can address fields by a stable name regardless of how the
// source cased its headers.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Col returns the column index of the first candidate name present.
func (t Table) Col(names ...string) (int, bool) {
	for _, name := range names {
		if idx, ok := t.index[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

// ColContaining returns the first column whose name contains every substring.
func (t Table) ColContaining(substrs ...string) (int, bool) {
	for idx, name := range t.Header {
		all := true
		for _, sub := range substrs {
			if !strings.Contains(name, sub) {
				all = false
				break
			}
		}
		if all {
			return idx, true
		}
	}
	return 0, false
}

// Value returns the trimmed cell at (row, col), tolerating short rows.
func (t Table) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (t *Table) buildIndex() {
	t.index = make(map[string]int, len(t.Header))
	for idx, name := range t.Header {
		t.index[name] = idx
	}
}

// ReadCSV loads a CSV file into a Table with normalized column names.
// A missing file is treated as an empty table, not an error.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("read header %s: %w", path, err)
	}

	t := Table{Header: make([]string, len(header))}
	for i, name := range header {
		t.Header[i] = normalizeColumn(name)
	}
	t.buildIndex()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row %s: %w", path, err)
		}
		if len(row) == 0 {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Equal compares two tables cell by cell.
func (t Table) Equal(o Table) bool {
	if len(t.Header) != len(o.Header) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Header {
		if t.Header[i] != o.Header[i] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(o.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != o.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// Persist writes the (possibly fix-corrected) table back to path, but only
// when it differs from what is currently on disk. Persisting is best-effort:
// callers log the returned error and move on, the in-memory table stays
// authoritative either way.
func Persist(path string, t Table) error {
	current, err := ReadCSV(path)
	if err == nil && current.Equal(t) {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("write header %s: %w", path, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
