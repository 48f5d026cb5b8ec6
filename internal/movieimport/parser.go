package movieimport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"reelshelf/internal/service"
)

// Recognized header names, lowercased. Only "title" is mandatory; the rest
// are picked up by name wherever they appear.
const (
	colTitle       = "title"
	colYear        = "year"
	colDirector    = "director"
	colGenre       = "genre"
	colRating      = "rating"
	colPosterURL   = "posterurl"
	colWatchedDate = "watcheddate"
	colNotes       = "notes"
)

// genreSeparator splits multi-genre cells ("Sci-Fi|Drama").
const genreSeparator = "|"

// RowError records why one data row was rejected. Row numbers are 1-based
// and count the header, matching what a spreadsheet shows the user.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ParseResult holds the rows that parsed cleanly and the per-row failures.
type ParseResult struct {
	Movies []service.CreateMovieInput `json:"movies"`
	Errors []RowError                 `json:"errors"`
}

// ParseCSV reads a movie import file. The first record is the header; a
// missing title column rejects the whole file, while individual bad rows are
// reported in the result and skipped.
func ParseCSV(r io.Reader, maxRows int) (*ParseResult, error) {
	// Excel exports, and our own template, prefix the file with a UTF-8 BOM;
	// left in place it would glue itself to the first header name.
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(BOM)); err == nil && bytes.Equal(lead, BOM) {
		_, _ = br.Discard(len(BOM))
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Movies: []service.CreateMovieInput{},
		Errors: []RowError{},
	}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			// csv.Reader reports ragged rows here; the row is skipped, the
			// rest of the file still parses.
			result.Errors = append(result.Errors, RowError{Row: row, Error: err.Error()})
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

// headerIndex maps recognized column names to their positions.
// Matching is case-insensitive and ignores surrounding whitespace.
func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := idx[colTitle]; !ok {
		return nil, fmt.Errorf("import file must have a %q column", colTitle)
	}
	return idx, nil
}

func recordToMovie(record []string, idx map[string]int) (*service.CreateMovieInput, error) {
	title := strings.TrimSpace(cell(record, idx, colTitle))
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	movie := &service.CreateMovieInput{Title: title}

	if raw := strings.TrimSpace(cell(record, idx, colYear)); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", raw)
		}
		movie.Year = &year
	}
	if raw := strings.TrimSpace(cell(record, idx, colDirector)); raw != "" {
		movie.Director = &raw
	}
	if raw := strings.TrimSpace(cell(record, idx, colGenre)); raw != "" {
		for _, name := range strings.Split(raw, genreSeparator) {
			if name = strings.TrimSpace(name); name != "" {
				movie.Genres = append(movie.Genres, name)
			}
		}
	}
	if raw := strings.TrimSpace(cell(record, idx, colRating)); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 10 {
			return nil, fmt.Errorf("invalid rating %q", raw)
		}
		movie.UserRating = &rating
	}
	if raw := strings.TrimSpace(cell(record, idx, colPosterURL)); raw != "" {
		movie.PosterURL = &raw
	}
	if raw := strings.TrimSpace(cell(record, idx, colWatchedDate)); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid watched date %q", raw)
		}
		movie.WatchedDate = &date
		movie.Watched = true
	}
	if raw := strings.TrimSpace(cell(record, idx, colNotes)); raw != "" {
		movie.Notes = &raw
	}

	return movie, nil
}

// cell returns the value of a named column, or "" when the column is absent
// from the header or the row is shorter than the header.
func cell(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseDate accepts ISO dates with or without a time component.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
