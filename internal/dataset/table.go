package dataset

import "fmt"

// Table holds one loaded listing file: a header row plus raw string rows.
// Numeric views produced by the coercion pass are cached per column.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string

	numeric map[string][]float64
}

// NewTable creates a table from a header row and data rows.
func NewTable(name string, headers []string, rows [][]string) *Table {
	return &Table{
		Name:    name,
		Headers: headers,
		Rows:    rows,
		numeric: make(map[string][]float64),
	}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns the raw string values of the named column. Rows shorter
// than the header row contribute empty cells.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found in %s", name, t.Name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

// DistinctCount returns the number of distinct values in the named column.
// Cells holding a textual missing marker are not counted as a value.
func (t *Table) DistinctCount(name string) (int, error) {
	values, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if IsMissingText(v) {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen), nil
}

// Coerce converts the named columns to their numeric view, replacing every
// unparseable value with the missing marker. Columns are coerced
// independently; a bad value never aborts the rest of the pass. Unknown
// column names are reported after all named columns have been processed.
func (t *Table) Coerce(names ...string) error {
	var missing []string
	for _, name := range names {
		values, err := t.Column(name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		t.numeric[name] = CoerceColumn(values)
	}
	if len(missing) > 0 {
		return fmt.Errorf("cannot coerce absent columns %v in %s", missing, t.Name)
	}
	return nil
}

// Numeric returns the numeric view of the named column. Columns already
// coerced return their cached view; otherwise the column qualifies only if
// every non-empty raw value parses after cleanup, mirroring how a typed
// reader would infer the column.
func (t *Table) Numeric(name string) ([]float64, bool) {
	if vals, ok := t.numeric[name]; ok {
		return vals, true
	}
	raw, err := t.Column(name)
	if err != nil {
		return nil, false
	}
	if !allParse(raw) {
		return nil, false
	}
	vals := CoerceColumn(raw)
	t.numeric[name] = vals
	return vals, true
}

// IsNumeric reports whether the named column has a numeric view.
func (t *Table) IsNumeric(name string) bool {
	_, ok := t.Numeric(name)
	return ok
}

// NumericColumns returns the names of all numeric columns in header order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, h := range t.Headers {
		if t.IsNumeric(h) {
			names = append(names, h)
		}
	}
	return names
}

// CategoricalColumns returns the names of all non-numeric columns in
// header order.
func (t *Table) CategoricalColumns() []string {
	var names []string
	for _, h := range t.Headers {
		if !t.IsNumeric(h) {
			names = append(names, h)
		}
	}
	return names
}

// allParse applies the strict rule used for type inference: every non-blank
// value must parse as a plain number, without the cleanup pass that explicit
// coercion performs. A column of "160 m²" strings stays categorical unless
// the caller coerces it.
func allParse(raw []string) bool {
	nonEmpty := 0
	for _, v := range raw {
		if isBlank(v) {
			continue
		}
		nonEmpty++
		if !parsesStrict(v) {
			return false
		}
	}
	return nonEmpty > 0
}
