package entity

// Column pairs a source column name with its assigned category.
type Column struct {
	Name     string
	Category Category
}

// Table is the in-memory form of one parsed CSV file. Column order matches
// the source header (with the derived datetime column first when present)
// and row order matches the source file.
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// CategoryColumns returns the indexes of columns in the given category,
// in table order.
func (t *Table) CategoryColumns(cat Category) []int {
	var indexes []int
	for i, col := range t.Columns {
		if col.Category == cat {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Categories returns the categories present in the table, in the canonical
// order, omitting empty ones.
func (t *Table) Categories() []Category {
	present := make(map[Category]bool, len(t.Columns))
	for _, col := range t.Columns {
		present[col.Category] = true
	}

	var out []Category
	for _, cat := range Categories() {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// MissingCount returns the number of missing cells in the column at idx.
func (t *Table) MissingCount(idx int) int {
	count := 0
	for _, row := range t.Rows {
		if row[idx].IsMissing() {
			count++
		}
	}
	return count
}
