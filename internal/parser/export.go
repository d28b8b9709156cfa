package parser

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/luxfeed/tvparse/internal/entity"
)

// ExportToCSV writes the loaded table (optionally restricted to one
// category) to path. Missing cells become empty fields, floats carry exactly
// decimalPlaces digits.
func (p *Parser) ExportToCSV(path, category string) (err error) {
	t, err := p.Table()
	if err != nil {
		return err
	}
	indexes, _, err := p.selectColumns(t, category)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot write csv file %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close csv file %s", path)
		}
	}()

	w := csv.NewWriter(f)

	header := make([]string, len(indexes))
	for i, idx := range indexes {
		header[i] = t.Columns[idx].Name
	}
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write header to %s", path)
	}

	record := make([]string, len(indexes))
	for ri, row := range t.Rows {
		for i, idx := range indexes {
			record[i] = p.renderCell(row[idx], t.Columns[idx].Name)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write row %d to %s", ri+1, path)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "failed to flush csv file %s", path)
	}

	p.logger.Info("csv exported",
		zap.String("path", path),
		zap.String("category", category),
		zap.Int("rows", len(t.Rows)))

	return nil
}

// ExportToJSON writes the loaded table (optionally restricted to one
// category) to path as an indented array of row objects. Missing cells
// become null, numeric cells stay native JSON numbers rounded to
// decimalPlaces.
func (p *Parser) ExportToJSON(path, category string) error {
	t, err := p.Table()
	if err != nil {
		return err
	}
	indexes, _, err := p.selectColumns(t, category)
	if err != nil {
		return err
	}

	records := make([]map[string]any, len(t.Rows))
	for ri, row := range t.Rows {
		record := make(map[string]any, len(indexes))
		for _, idx := range indexes {
			record[t.Columns[idx].Name] = p.jsonValue(row[idx], t.Columns[idx].Name)
		}
		records[ri] = record
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal table to json")
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrapf(err, "cannot write json file %s", path)
	}

	p.logger.Info("json exported",
		zap.String("path", path),
		zap.String("category", category),
		zap.Int("rows", len(t.Rows)))

	return nil
}

// jsonValue maps a cell to its JSON representation.
func (p *Parser) jsonValue(c entity.Cell, column string) any {
	switch c.Kind() {
	case entity.KindMissing:
		return nil
	case entity.KindInt:
		return c.Int()
	case entity.KindFloat:
		if isTimeLike(column) {
			return json.RawMessage(c.Decimal().String())
		}
		return json.RawMessage(c.Decimal().StringFixed(p.decimalPlaces))
	default:
		return c.Text()
	}
}
