package parser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/luxfeed/tvparse/internal/entity"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}).
			Bold(true)

	headerRowStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
)

// DisplaySummary renders row/column counts, per-category column counts, the
// datetime range and per-column missing counts for the loaded table.
func (p *Parser) DisplaySummary() (string, error) {
	t, err := p.Table()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== Chart Export Summary ==="))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total rows: %d\n", len(t.Rows))
	fmt.Fprintf(&b, "Total columns: %d\n", len(t.Columns))

	if start, end, ok := dateRange(t); ok {
		fmt.Fprintf(&b, "Date range: %s to %s\n", start, end)
	}

	b.WriteString("Columns per category:\n")
	for _, cat := range t.Categories() {
		fmt.Fprintf(&b, "  %s: %d\n", cat, len(t.CategoryColumns(cat)))
	}

	missingLines := missingSummary(t)
	if len(missingLines) > 0 {
		b.WriteString("Missing data:\n")
		for _, line := range missingLines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// DisplayData renders up to maxRows rows of the loaded table as a console
// table. A non-empty category restricts output to that category's columns
// plus the identifying time/datetime columns; a category with no columns in
// the table yields ErrUnknownCategory. maxRows <= 0 selects the default of 10.
func (p *Parser) DisplayData(category string, maxRows int) (string, error) {
	t, err := p.Table()
	if err != nil {
		return "", err
	}
	if maxRows <= 0 {
		maxRows = defaultDisplayRows
	}

	indexes, title, err := p.selectColumns(t, category)
	if err != nil {
		return "", err
	}

	shown := len(t.Rows)
	if shown > maxRows {
		shown = maxRows
	}

	headers := make([]string, len(indexes))
	for i, idx := range indexes {
		headers[i] = t.Columns[idx].Name
	}

	render := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for _, row := range t.Rows[:shown] {
		rendered := make([]string, len(indexes))
		for i, idx := range indexes {
			rendered[i] = p.renderCell(row[idx], t.Columns[idx].Name)
		}
		render.Row(rendered...)
	}

	out := []string{titleStyle.Render(title), render.String()}
	if shown < len(t.Rows) {
		out = append(out, fmt.Sprintf("... showing first %d of %d rows", shown, len(t.Rows)))
	}
	return strings.Join(out, "\n"), nil
}

// selectColumns resolves the column subset for a category filter. The empty
// category selects everything.
func (p *Parser) selectColumns(t *entity.Table, category string) ([]int, string, error) {
	if category == "" {
		indexes := make([]int, len(t.Columns))
		for i := range t.Columns {
			indexes[i] = i
		}
		return indexes, "=== All Data ===", nil
	}

	cat, ok := entity.CategoryFromString(category)
	if !ok {
		return nil, "", errors.Wrapf(entity.ErrUnknownCategory, "%q", category)
	}
	indexes := t.CategoryColumns(cat)
	if len(indexes) == 0 {
		return nil, "", errors.Wrapf(entity.ErrUnknownCategory, "no %s columns in loaded table", cat)
	}

	// Keep the identifying columns in every filtered view.
	if cat != entity.CategoryOHLC {
		var identifying []int
		for _, name := range []string{datetimeColumn, timeColumn} {
			if idx := t.ColumnIndex(name); idx >= 0 {
				identifying = append(identifying, idx)
			}
		}
		indexes = append(identifying, indexes...)
	}

	return indexes, fmt.Sprintf("=== %s Data ===", cat), nil
}

// renderCell formats one cell for console or CSV output. Floats carry
// exactly decimalPlaces digits, missing cells render as the empty field.
func (p *Parser) renderCell(c entity.Cell, column string) string {
	if c.Kind() == entity.KindFloat && !isTimeLike(column) {
		return c.Decimal().StringFixed(p.decimalPlaces)
	}
	return c.String()
}

func dateRange(t *entity.Table) (string, string, bool) {
	idx := t.ColumnIndex(datetimeColumn)
	if idx < 0 {
		return "", "", false
	}

	var start, end string
	for _, row := range t.Rows {
		cell := row[idx]
		if cell.IsMissing() {
			continue
		}
		v := cell.Text()
		// Datetime strings sort chronologically.
		if start == "" || v < start {
			start = v
		}
		if v > end {
			end = v
		}
	}
	return start, end, start != ""
}

func missingSummary(t *entity.Table) []string {
	var lines []string
	for idx, col := range t.Columns {
		missing := t.MissingCount(idx)
		if missing == 0 {
			continue
		}
		pct := float64(missing) / float64(len(t.Rows)) * 100
		lines = append(lines, fmt.Sprintf("  %s: %d rows (%.1f%%)", col.Name, missing, pct))
	}
	return lines
}
