package table

// Dataset is a rectangular snapshot of one HTML table: ordered column names
// and one slice of verbatim cell text per table row. A Dataset is never
// mutated after extraction; filtering stages build new Datasets instead.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Column returns the index of the first column with the given name.
func (d *Dataset) Column(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Value returns the cell text at the given row for the named column.
// The second return value is false when the column does not exist or the
// row index is out of range.
func (d *Dataset) Value(row int, column string) (string, bool) {
	if row < 0 || row >= len(d.Rows) {
		return "", false
	}
	i, ok := d.Column(column)
	if !ok || i >= len(d.Rows[row]) {
		return "", false
	}
	return d.Rows[row][i], true
}
