package parser

import (
	"github.com/shopspring/decimal"

	"github.com/luxfeed/tvparse/internal/entity"
)

// ColumnInfo describes one column of the loaded table.
type ColumnInfo struct {
	Category     entity.Category
	Type         string
	MissingCount int
	// Min and Max are set for columns holding at least one numeric cell.
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Inferred column types.
const (
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeText    = "text"
	TypeMixed   = "mixed"
	TypeEmpty   = "empty"
)

// GetColumnInfo returns category, inferred type, missing count and numeric
// range for every column of the loaded table.
func (p *Parser) GetColumnInfo() (map[string]ColumnInfo, error) {
	table, err := p.Table()
	if err != nil {
		return nil, err
	}

	info := make(map[string]ColumnInfo, len(table.Columns))
	for idx, col := range table.Columns {
		info[col.Name] = p.columnInfo(table, idx, col)
	}
	return info, nil
}

func (p *Parser) columnInfo(table *entity.Table, idx int, col entity.Column) ColumnInfo {
	var (
		ints, floats, texts, missing int
		min, max                     *decimal.Decimal
	)

	for _, row := range table.Rows {
		cell := row[idx]
		switch cell.Kind() {
		case entity.KindMissing:
			missing++
			continue
		case entity.KindInt:
			ints++
		case entity.KindFloat:
			floats++
		case entity.KindText:
			texts++
		}

		if !cell.IsNumeric() {
			continue
		}
		v := cell.Decimal()
		if min == nil || v.LessThan(*min) {
			vv := v
			min = &vv
		}
		if max == nil || v.GreaterThan(*max) {
			vv := v
			max = &vv
		}
	}

	return ColumnInfo{
		Category:     col.Category,
		Type:         inferType(ints, floats, texts),
		MissingCount: missing,
		Min:          min,
		Max:          max,
	}
}

func inferType(ints, floats, texts int) string {
	switch {
	case ints == 0 && floats == 0 && texts == 0:
		return TypeEmpty
	case texts > 0 && (ints > 0 || floats > 0):
		return TypeMixed
	case texts > 0:
		return TypeText
	case floats > 0:
		return TypeFloat
	default:
		return TypeInteger
	}
}
