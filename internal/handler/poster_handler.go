package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelshelf/internal/service"
)

// PosterHandler handles poster image uploads.
type PosterHandler struct {
	posterService service.PosterService
}

// NewPosterHandler creates a new PosterHandler.
func NewPosterHandler(posterService service.PosterService) *PosterHandler {
	return &PosterHandler{posterService: posterService}
}

// Upload handles POST /api/v1/movies/:id/poster
func (h *PosterHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer file.Close()

	movie, err := h.posterService.Upload(c.Request.Context(), userID, movieID, &service.UploadPosterInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movie)
}
