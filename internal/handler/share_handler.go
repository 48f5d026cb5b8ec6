package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelshelf/internal/service"
)

// ShareHandler handles collection sharing endpoints.
type ShareHandler struct {
	shareService service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// Share handles POST /api/v1/shares
func (h *ShareHandler) Share(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	grant, err := h.shareService.Share(c.Request.Context(), userID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, grant)
}

// ListGrants handles GET /api/v1/shares
func (h *ShareHandler) ListGrants(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	grants, err := h.shareService.ListGrants(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, grants)
}

// Revoke handles DELETE /api/v1/shares/:userId
func (h *ShareHandler) Revoke(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sharedWithID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.shareService.Revoke(c.Request.Context(), userID, sharedWithID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "share revoked"})
}

// ListSharedWithMe handles GET /api/v1/shared
func (h *ShareHandler) ListSharedWithMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shared, err := h.shareService.ListSharedWithMe(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, shared)
}

// UpdateShared handles PUT /api/v1/shared/movies/:id
func (h *ShareHandler) UpdateShared(c *gin.Context) {
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

	movie, err := h.shareService.UpdateShared(c.Request.Context(), userID, movieID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movie)
}
