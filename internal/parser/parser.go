// Package parser loads chart-export CSV files into a typed in-memory table,
// derives a readable datetime column, classifies columns and rounds numeric
// cells to a configured precision.
package parser

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/luxfeed/tvparse/internal/classifier"
	"github.com/luxfeed/tvparse/internal/entity"
	"github.com/luxfeed/tvparse/internal/timeutil"
)

const (
	timeColumn     = "time"
	datetimeColumn = "datetime"

	defaultDisplayRows = 10
)

// Parser parses chart-export CSV files and holds the most recently parsed
// table. A subsequent ParseCSV call replaces the table, it never merges.
// Parser is not safe for concurrent use.
type Parser struct {
	decimalPlaces int32
	table         *entity.Table
	logger        *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for parse and export progress.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a parser that rounds numeric cells to decimalPlaces digits.
func New(decimalPlaces int, opts ...Option) *Parser {
	p := &Parser{
		decimalPlaces: int32(decimalPlaces),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.String("session", uuid.NewString()))
	return p
}

// ParseCSV reads the file at path into a typed table and retains it as the
// parser's current state. The file handle is released before return on every
// path. Structural problems (missing file, empty file, ragged rows) abort the
// parse; per-cell timestamp failures degrade to missing markers.
func (p *Parser) ParseCSV(path string) (*entity.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(entity.ErrFileNotFound, "csv file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to open csv file %s", path)
	}
	defer f.Close()

	header, records, err := readRecords(f, path)
	if err != nil {
		return nil, err
	}

	table := p.buildTable(header, records)
	p.table = table

	p.logger.Info("csv parsed",
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Columns)))

	return table, nil
}

// Table returns the currently loaded table, or ErrNoData before the first
// successful parse.
func (p *Parser) Table() (*entity.Table, error) {
	if p.table == nil {
		return nil, errors.Wrap(entity.ErrNoData, "use ParseCSV first")
	}
	return p.table, nil
}

// ListCategories returns the categories present in the loaded table, in the
// canonical order, omitting empty ones.
func (p *Parser) ListCategories() ([]entity.Category, error) {
	table, err := p.Table()
	if err != nil {
		return nil, err
	}
	return table.Categories(), nil
}

func readRecords(r io.Reader, path string) ([]string, [][]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.Wrapf(entity.ErrEmptyFile, "csv file %s has no header", path)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read header of %s", path)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return nil, nil, errors.Wrapf(entity.ErrMalformedData,
					"row %d of %s has %s", parseErr.Line, path, parseErr.Err)
			}
			return nil, nil, errors.Wrapf(err, "failed to read %s", path)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, nil, errors.Wrapf(entity.ErrEmptyFile, "csv file %s has a header but no data rows", path)
	}

	return header, records, nil
}

// buildTable types the raw records, derives the datetime column from the
// time column when present, rounds numeric cells and classifies columns.
func (p *Parser) buildTable(header []string, records [][]string) *entity.Table {
	columns := make([]entity.Column, len(header))
	for i, name := range header {
		columns[i] = entity.Column{Name: name, Category: classifier.Classify(name)}
	}

	rows := make([][]entity.Cell, len(records))
	for ri, record := range records {
		cells := make([]entity.Cell, len(record))
		for ci, raw := range record {
			cells[ci] = entity.ParseCell(raw)
		}
		rows[ri] = cells
	}

	for ci, col := range columns {
		if isTimeLike(col.Name) {
			continue
		}
		for ri := range rows {
			rows[ri][ci] = rows[ri][ci].Round(p.decimalPlaces)
		}
	}

	timeIdx := -1
	dtIdx := -1
	for i, col := range columns {
		if strings.EqualFold(col.Name, timeColumn) && timeIdx < 0 {
			timeIdx = i
		}
		if strings.EqualFold(col.Name, datetimeColumn) && dtIdx < 0 {
			dtIdx = i
		}
	}
	if timeIdx >= 0 {
		// The derived column lives first and raw timestamps stay where they
		// were. A datetime column carried by the source (a re-parsed export)
		// is overwritten in place, never duplicated.
		switch {
		case dtIdx < 0:
			columns = append([]entity.Column{{Name: datetimeColumn, Category: entity.CategoryOHLC}}, columns...)
			for ri := range rows {
				rows[ri] = append([]entity.Cell{entity.MissingCell()}, rows[ri]...)
			}
			timeIdx++
		case dtIdx > 0:
			columns = moveColumnFront(columns, dtIdx)
			for ri := range rows {
				rows[ri] = moveCellFront(rows[ri], dtIdx)
			}
			if timeIdx < dtIdx {
				timeIdx++
			}
		}
		for ri := range rows {
			rows[ri][0] = timeutil.CellToDatetime(rows[ri][timeIdx])
		}
	}

	return &entity.Table{Columns: columns, Rows: rows}
}

func isTimeLike(name string) bool {
	return strings.EqualFold(name, timeColumn) || strings.EqualFold(name, datetimeColumn)
}

func moveColumnFront(columns []entity.Column, idx int) []entity.Column {
	moved := columns[idx]
	rest := append(append([]entity.Column{}, columns[:idx]...), columns[idx+1:]...)
	return append([]entity.Column{moved}, rest...)
}

func moveCellFront(cells []entity.Cell, idx int) []entity.Cell {
	moved := cells[idx]
	rest := append(append([]entity.Cell{}, cells[:idx]...), cells[idx+1:]...)
	return append([]entity.Cell{moved}, rest...)
}
