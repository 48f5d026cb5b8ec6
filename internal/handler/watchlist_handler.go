package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelshelf/internal/service"
)

// WatchlistHandler handles watchlist endpoints.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	movieService     service.MovieService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, movieService service.MovieService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, movieService: movieService}
}

// List handles GET /api/v1/watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.watchlistService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}

// Add handles POST /api/v1/watchlist
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.AddWatchlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.watchlistService.Add(c.Request.Context(), userID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// Remove handles DELETE /api/v1/watchlist/:id
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.watchlistService.Remove(c.Request.Context(), userID, itemID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "watchlist item removed"})
}

// MoveToCollection handles POST /api/v1/watchlist/:id/move
func (h *WatchlistHandler) MoveToCollection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movie, err := h.watchlistService.MoveToCollection(c.Request.Context(), userID, itemID, h.movieService)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, movie)
}
