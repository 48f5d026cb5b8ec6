package movieimport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_FullRow(t *testing.T) {
	in := strings.NewReader(
		"title,year,director,genre,rating,posterUrl,watchedDate,notes\n" +
			"Dune,2021,Denis Villeneuve,Sci-Fi|Adventure,8.5,https://img.example/dune.jpg,2024-01-02,Rewatch soon\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)
	assert.Empty(t, result.Errors)

	m := result.Movies[0]
	assert.Equal(t, "Dune", m.Title)
	require.NotNil(t, m.Year)
	assert.Equal(t, 2021, *m.Year)
	require.NotNil(t, m.Director)
	assert.Equal(t, "Denis Villeneuve", *m.Director)
	assert.Equal(t, []string{"Sci-Fi", "Adventure"}, m.Genres)
	require.NotNil(t, m.UserRating)
	assert.Equal(t, 8.5, *m.UserRating)
	require.NotNil(t, m.PosterURL)
	assert.Equal(t, "https://img.example/dune.jpg", *m.PosterURL)
	assert.True(t, m.Watched)
	require.NotNil(t, m.WatchedDate)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *m.WatchedDate)
	require.NotNil(t, m.Notes)
	assert.Equal(t, "Rewatch soon", *m.Notes)
}

func TestParseCSV_TitleOnly(t *testing.T) {
	in := strings.NewReader("title\nEraserhead\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)

	m := result.Movies[0]
	assert.Equal(t, "Eraserhead", m.Title)
	assert.Nil(t, m.Year)
	assert.Nil(t, m.Director)
	assert.Empty(t, m.Genres)
	assert.False(t, m.Watched)
}

func TestParseCSV_MissingTitleColumn(t *testing.T) {
	in := strings.NewReader("year,director\n2021,Someone\n")

	_, err := ParseCSV(in, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestParseCSV_BadRowsReportedAndSkipped(t *testing.T) {
	in := strings.NewReader(
		"title,year,rating\n" +
			"Good Movie,1999,7\n" +
			",2000,5\n" + // missing title
			"Bad Year,twenty,5\n" +
			"Bad Rating,2001,eleven\n" +
			"Out Of Range,2002,11\n" +
			"Also Good,2003,9.5\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)

	require.Len(t, result.Movies, 2)
	assert.Equal(t, "Good Movie", result.Movies[0].Title)
	assert.Equal(t, "Also Good", result.Movies[1].Title)

	require.Len(t, result.Errors, 4)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Error, "title")
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Error, "year")
	assert.Equal(t, 5, result.Errors[2].Row)
	assert.Contains(t, result.Errors[2].Error, "rating")
	assert.Equal(t, 6, result.Errors[3].Row)
	assert.Contains(t, result.Errors[3].Error, "rating")
}

func TestParseCSV_RaggedRowSkipped(t *testing.T) {
	in := strings.NewReader(
		"title,year\n" +
			"Fine,2020\n" +
			"Too,2021,Many,Fields\n" +
			"Also Fine,2022\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)

	require.Len(t, result.Movies, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
}

func TestParseCSV_CaseInsensitiveHeader(t *testing.T) {
	in := strings.NewReader("Title, YEAR ,Genre\nAlien,1979,Horror|Sci-Fi\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)
	assert.Equal(t, "Alien", result.Movies[0].Title)
	require.NotNil(t, result.Movies[0].Year)
	assert.Equal(t, 1979, *result.Movies[0].Year)
	assert.Equal(t, []string{"Horror", "Sci-Fi"}, result.Movies[0].Genres)
}

func TestParseCSV_RowLimit(t *testing.T) {
	in := strings.NewReader("title\nOne\nTwo\nThree\n")

	_, err := ParseCSV(in, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row limit")
}

func TestParseCSV_RFC3339WatchedDate(t *testing.T) {
	in := strings.NewReader("title,watchedDate\nArrival,2023-06-10T20:00:00Z\n")

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)
	require.NotNil(t, result.Movies[0].WatchedDate)
	assert.True(t, result.Movies[0].Watched)
}

func TestParseCSV_BOMHeader(t *testing.T) {
	in := bytes.NewReader(append(append([]byte{}, BOM...),
		[]byte("title,year\nSolaris,1972\n")...))

	result, err := ParseCSV(in, 0)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)
	assert.Equal(t, "Solaris", result.Movies[0].Title)
}

func TestWriteTemplate_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, BOM))

	// The template must import as-is, BOM included.
	result, err := ParseCSV(bytes.NewReader(out), 0)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Movies, 2)
	assert.Equal(t, "The Godfather", result.Movies[0].Title)
	assert.Equal(t, []string{"Crime", "Drama"}, result.Movies[0].Genres)
}
