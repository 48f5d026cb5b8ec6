package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelshelf/internal/service"
)

// MovieHandler handles endpoints for the caller's own collection.
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List handles GET /api/v1/movies
func (h *MovieHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	movies, err := h.movieService.ListOwned(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movies)
}

// Create handles POST /api/v1/movies
func (h *MovieHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.CreateMovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	movie, err := h.movieService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, movie)
}

// Update handles PUT /api/v1/movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateMovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	movie, err := h.movieService.Update(c.Request.Context(), userID, movieID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movie)
}

// Delete handles DELETE /api/v1/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), userID, movieID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "movie deleted"})
}
