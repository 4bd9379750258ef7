package records

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"imagefetch/internal/models"
)

// Header names of the two required columns.
const (
	URLColumn  = "url"
	NameColumn = "restaurant_name"
)

// LoadFile opens path and loads records from it. Files ending in .xlsx are
// read from their first sheet, everything else is parsed as CSV.
func LoadFile(path string) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: IOFailure, Path: path, Err: err}
	}
	defer file.Close()

	var recs []models.Record
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		recs, err = LoadXLSX(file)
	} else {
		recs, err = LoadCSV(file)
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		loadErr.Path = path
	}
	return recs, err
}

// LoadCSV reads a header-bearing CSV stream. Rows may have fewer fields than
// the header; missing fields count as empty.
func LoadCSV(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &LoadError{Kind: ParseFailure, Err: err}
		}
		return nil, &LoadError{Kind: IOFailure, Err: err}
	}

	return fromRows(rows)
}

// LoadXLSX reads the first sheet of a workbook using the same header contract as LoadCSV.
func LoadXLSX(r io.Reader) ([]models.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Kind: ParseFailure, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &LoadError{Kind: ParseFailure, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &LoadError{Kind: ParseFailure, Err: err}
	}

	return fromRows(rows)
}

func fromRows(rows [][]string) ([]models.Record, error) {
	if len(rows) == 0 {
		return nil, &LoadError{Kind: Empty, Err: ErrEmpty}
	}

	urlIdx, nameIdx := columnIndex(rows[0], URLColumn), columnIndex(rows[0], NameColumn)

	var recs []models.Record
	for i, row := range rows[1:] {
		url, name := field(row, urlIdx), field(row, nameIdx)
		if url == "" || name == "" {
			slog.Debug("skipping row without url or name", "row", i+2)
			continue
		}
		recs = append(recs, models.Record{URL: url, Name: name})
	}

	if len(recs) == 0 {
		return nil, &LoadError{Kind: Empty, Err: ErrEmpty}
	}
	return recs, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
