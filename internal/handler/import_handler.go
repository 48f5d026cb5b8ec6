package handler

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"reelshelf/internal/config"
	"reelshelf/internal/movieimport"
	"reelshelf/internal/service"
)

// ImportHandler handles bulk import of movies from CSV and XLSX files.
type ImportHandler struct {
	movieService service.MovieService
	cfg          config.ImportConfig
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(movieService service.MovieService, cfg config.ImportConfig) *ImportHandler {
	return &ImportHandler{movieService: movieService, cfg: cfg}
}

// ImportResponse combines parse-stage and import-stage outcomes for one file.
type ImportResponse struct {
	ParseErrors []movieimport.RowError    `json:"parse_errors"`
	Result      *service.BulkImportResult `json:"result"`
}

// Import handles POST /api/v1/movies/import
func (h *ImportHandler) Import(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}
	if fileHeader.Size > h.cfg.MaxFileSizeMB*1024*1024 {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer file.Close()

	var parsed *movieimport.ParseResult
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		parsed, err = movieimport.ParseCSV(file, h.cfg.MaxRows)
	case ".xlsx":
		parsed, err = movieimport.ParseXLSX(file, h.cfg.MaxRows)
	default:
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: csv, xlsx")
		return
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "IMPORT_PARSE_ERROR", err.Error())
		return
	}

	result, err := h.movieService.BulkImport(c.Request.Context(), userID, parsed.Movies)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ImportResponse{ParseErrors: parsed.Errors, Result: result})
}

// Template handles GET /api/v1/movies/import/template
func (h *ImportHandler) Template(c *gin.Context) {
	filename := "reelshelf_import_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := movieimport.WriteTemplate(c.Writer); err != nil {
		HandleError(c, err)
	}
}
