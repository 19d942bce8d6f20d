package payroll

import "strings"

// RawRow exposes label-based access to one row of decoded tabular data.
// It decouples transformers from any specific tabular container: a second
// implementation can wrap a different input representation without touching
// transformation logic.
type RawRow interface {
	// Field returns the trimmed cell value for the given column label and
	// whether the column exists. Missing or null cells yield "".
	Field(label string) (string, bool)
}

// Table is a label-indexed view over parsed delimited records. Rows shorter
// than the header are padded with empty cells; extra cells are dropped.
type Table struct {
	index map[string]int
	rows  [][]string
}

// NewTable builds a Table from raw CSV records where the first record is the
// header row. Header labels are matched as trimmed literal strings.
func NewTable(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{index: map[string]int{}}
	}
	header := records[0]
	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}
	return &Table{index: index, rows: records[1:]}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i'th data row as a RawRow.
func (t *Table) Row(i int) RawRow {
	return tableRow{table: t, cells: t.rows[i]}
}

type tableRow struct {
	table *Table
	cells []string
}

// Field implements RawRow.
func (r tableRow) Field(label string) (string, bool) {
	i, ok := r.table.index[label]
	if !ok {
		return "", false
	}
	if i >= len(r.cells) {
		return "", true // short row, treat as empty cell
	}
	return strings.TrimSpace(r.cells[i]), true
}
