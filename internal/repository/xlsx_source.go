package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"

	"spacex_dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

// readXLSX loads the first sheet of a workbook. Row 1 is the header.
func readXLSX(ctx context.Context, path string) ([]models.LaunchRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, loadErr(path, "open workbook", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, loadErr(path, "open workbook", errors.New("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, loadErr(path, "read sheet "+sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, loadErr(path, "read header", errors.New("sheet is empty"))
	}

	buf, err := rowsToCSV(rows)
	if err != nil {
		return nil, loadErr(path, "convert sheet", err)
	}
	return readCSV(ctx, path, bytes.NewReader(buf))
}

// rowsToCSV re-encodes sheet rows as CSV. excelize trims trailing empty
// cells, so short rows are padded to the header width.
func rowsToCSV(rows [][]string) ([]byte, error) {
	width := len(rows[0])
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row[:width]); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
