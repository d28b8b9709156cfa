package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind selects which variant of a Cell is populated.
type CellKind int

const (
	// KindMissing marks an absent or unparseable value. It is distinct
	// from zero and from the empty string.
	KindMissing CellKind = iota
	KindInt
	KindFloat
	KindText
)

// Cell is a tagged variant over the value types a CSV field can hold.
// The zero Cell is Missing.
type Cell struct {
	kind CellKind
	i    int64
	f    decimal.Decimal
	s    string
}

// MissingCell returns the missing-value marker.
func MissingCell() Cell {
	return Cell{kind: KindMissing}
}

// IntCell wraps an integer value.
func IntCell(v int64) Cell {
	return Cell{kind: KindInt, i: v}
}

// FloatCell wraps a decimal value.
func FloatCell(v decimal.Decimal) Cell {
	return Cell{kind: KindFloat, f: v}
}

// TextCell wraps a textual value.
func TextCell(v string) Cell {
	return Cell{kind: KindText, s: v}
}

// ParseCell types a raw CSV field: empty becomes Missing, then integer,
// then decimal, then text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return MissingCell()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntCell(i)
	}
	if d, err := decimal.NewFromString(trimmed); err == nil {
		return FloatCell(d)
	}
	return TextCell(raw)
}

// Kind reports which variant the cell holds.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsMissing reports whether the cell is the missing marker.
func (c Cell) IsMissing() bool {
	return c.kind == KindMissing
}

// IsNumeric reports whether the cell holds an integer or decimal value.
func (c Cell) IsNumeric() bool {
	return c.kind == KindInt || c.kind == KindFloat
}

// Int returns the integer value; zero unless Kind is KindInt.
func (c Cell) Int() int64 {
	return c.i
}

// Decimal returns the cell's numeric value. Integer cells are widened so
// callers comparing mixed columns do not need to branch on kind.
func (c Cell) Decimal() decimal.Decimal {
	if c.kind == KindInt {
		return decimal.NewFromInt(c.i)
	}
	return c.f
}

// Text returns the textual value; empty unless Kind is KindText.
func (c Cell) Text() string {
	return c.s
}

// Round returns the cell rounded half-up to places decimal digits.
// Non-float cells pass through unchanged.
func (c Cell) Round(places int32) Cell {
	if c.kind != KindFloat {
		return c
	}
	return FloatCell(c.f.Round(places))
}

// String renders the cell for display: missing as empty string, floats in
// their shortest exact form.
func (c Cell) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return c.f.String()
	case KindText:
		return c.s
	default:
		return ""
	}
}
