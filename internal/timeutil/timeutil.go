// Package timeutil converts Unix-epoch timestamps from chart exports into
// readable datetime strings.
package timeutil

import (
	"time"

	"github.com/pkg/errors"

	"github.com/luxfeed/tvparse/internal/entity"
)

// DatetimeLayout is the rendered form of every converted timestamp, in UTC.
const DatetimeLayout = "2006-01-02 15:04:05"

// Accepted epoch range: the epoch itself through 2100-01-01 00:00:00 UTC.
// Chart exports carry second-resolution timestamps; anything outside this
// window is treated as corrupt.
const (
	minTimestamp int64 = 0
	maxTimestamp int64 = 4102444800
)

// IsValidTimestamp reports whether ts is a plausible second-resolution
// Unix timestamp.
func IsValidTimestamp(ts int64) bool {
	return ts >= minTimestamp && ts <= maxTimestamp
}

// UnixToDatetime converts seconds since the epoch to a "YYYY-MM-DD HH:MM:SS"
// string in UTC.
func UnixToDatetime(ts int64) (string, error) {
	if !IsValidTimestamp(ts) {
		return "", errors.Wrapf(entity.ErrInvalidTimestamp, "timestamp %d outside accepted range [%d, %d]", ts, minTimestamp, maxTimestamp)
	}
	return time.Unix(ts, 0).UTC().Format(DatetimeLayout), nil
}

// CellToDatetime converts one timestamp cell to a datetime text cell.
// Non-numeric or out-of-range cells become the missing marker; a bad cell
// never aborts the surrounding parse. Fractional timestamps are truncated
// to whole seconds.
func CellToDatetime(c entity.Cell) entity.Cell {
	if !c.IsNumeric() {
		return entity.MissingCell()
	}
	formatted, err := UnixToDatetime(c.Decimal().IntPart())
	if err != nil {
		return entity.MissingCell()
	}
	return entity.TextCell(formatted)
}

// FormatDatetimeColumn converts a timestamp column element-wise, preserving
// length and position.
func FormatDatetimeColumn(cells []entity.Cell) []entity.Cell {
	out := make([]entity.Cell, len(cells))
	for i, c := range cells {
		out[i] = CellToDatetime(c)
	}
	return out
}
