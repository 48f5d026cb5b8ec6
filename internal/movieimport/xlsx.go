package movieimport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"reelshelf/internal/service"
)

// ParseXLSX reads a movie import workbook. Only the first sheet is read; its
// first row is the header, with the same column contract as ParseCSV.
func ParseXLSX(r io.Reader, maxRows int) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	idx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Movies: []service.CreateMovieInput{},
		Errors: []RowError{},
	}
	for i, record := range rows[1:] {
		row := i + 2 // 1-based, counting the header
		if isBlankRow(record) {
			continue
		}
		if maxRows > 0 && len(result.Movies) >= maxRows {
			return nil, fmt.Errorf("import exceeds %d row limit", maxRows)
		}
		movie, err := recordToMovie(record, idx)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Error: err.Error()})
			continue
		}
		result.Movies = append(result.Movies, *movie)
	}

	return result, nil
}

func isBlankRow(record []string) bool {
	for _, c := range record {
		if c != "" {
			return false
		}
	}
	return true
}
