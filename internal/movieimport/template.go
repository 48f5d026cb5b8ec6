package movieimport

import (
	"encoding/csv"
	"io"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// templateHeader is the canonical column order for the downloadable template.
var templateHeader = []string{
	"title", "year", "director", "genre", "rating", "posterUrl", "watchedDate", "notes",
}

// templateRows are illustrative entries shipped with the template so users
// can see the expected formats, the pipe-separated genres included.
var templateRows = [][]string{
	{"The Godfather", "1972", "Francis Ford Coppola", "Crime|Drama", "9.5", "", "2024-03-15", "A classic"},
	{"Spirited Away", "2001", "Hayao Miyazaki", "Animation|Fantasy", "9", "", "", ""},
}

// WriteTemplate writes the import template CSV, BOM first.
func WriteTemplate(w io.Writer) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(templateHeader); err != nil {
		return err
	}
	for _, row := range templateRows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
