package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reelshelf/internal/config"
	"reelshelf/internal/domain"
	"reelshelf/internal/handler"
	"reelshelf/internal/service"
	"reelshelf/mocks"
)

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{MaxRows: 1000, MaxFileSizeMB: 10}
}

// newUploadRequest builds a test context carrying a multipart file upload.
func newUploadRequest(t *testing.T, path, filename, content string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestImportHandler_Import_CSV(t *testing.T) {
	mockSvc := new(mocks.MockMovieService)
	h := handler.NewImportHandler(mockSvc, testImportConfig())

	userID := uuid.New()
	csvContent := "title,year,genre\nDune,2021,Sci-Fi|Adventure\n,2000,Drama\n"

	mockSvc.On("BulkImport", mock.Anything, userID, mock.MatchedBy(func(inputs []service.CreateMovieInput) bool {
		return len(inputs) == 1 && inputs[0].Title == "Dune"
	})).Return(&service.BulkImportResult{
		Imported: []domain.MovieWithGenres{
			{Movie: domain.Movie{Title: "Dune"}, Genres: []string{"Sci-Fi", "Adventure"}},
		},
		Failures: []service.ImportFailure{},
	}, nil)

	c, w := newUploadRequest(t, "/api/v1/movies/import", "movies.csv", csvContent)
	setAuthContext(c, userID, "user@test.com")

	h.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    handler.ImportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	// The empty-title row is a parse failure reported with its row number.
	require.Len(t, resp.Data.ParseErrors, 1)
	assert.Equal(t, 3, resp.Data.ParseErrors[0].Row)
	require.Len(t, resp.Data.Result.Imported, 1)
	mockSvc.AssertExpectations(t)
}

func TestImportHandler_Import_MissingTitleColumn(t *testing.T) {
	mockSvc := new(mocks.MockMovieService)
	h := handler.NewImportHandler(mockSvc, testImportConfig())

	c, w := newUploadRequest(t, "/api/v1/movies/import", "movies.csv", "year,director\n2021,Someone\n")
	setAuthContext(c, uuid.New(), "user@test.com")

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "BulkImport", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportHandler_Import_UnsupportedExtension(t *testing.T) {
	mockSvc := new(mocks.MockMovieService)
	h := handler.NewImportHandler(mockSvc, testImportConfig())

	c, w := newUploadRequest(t, "/api/v1/movies/import", "movies.pdf", "not a spreadsheet")
	setAuthContext(c, uuid.New(), "user@test.com")

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestImportHandler_Import_NoFile(t *testing.T) {
	mockSvc := new(mocks.MockMovieService)
	h := handler.NewImportHandler(mockSvc, testImportConfig())

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/movies/import", nil)
	setAuthContext(c, uuid.New(), "user@test.com")

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandler_Template(t *testing.T) {
	mockSvc := new(mocks.MockMovieService)
	h := handler.NewImportHandler(mockSvc, testImportConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/movies/import/template", http.NoBody)

	h.Template(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "title,year,director,genre")
}
