package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	svc   service.StatusService
	media media.Resolver
}

func NewStatusHandler(svc service.StatusService, m media.Resolver) *StatusHandler {
	return &StatusHandler{svc: svc, media: m}
}

// Update handles POST /api/update-book-status, form-encoded or JSON.
func (h *StatusHandler) Update(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "book_id and status are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Update(ctx, middleware.Identity(c), req.BookID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Remove handles POST /api/remove-bookmark
func (h *StatusHandler) Remove(c *gin.Context) {
	var req dto.RemoveBookmarkRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "bookmark_id is required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Remove(ctx, middleware.Identity(c), req.BookmarkID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Bookmarks handles GET /api/bookmarks?status=all|reading|planned|read|abandoned
func (h *StatusHandler) Bookmarks(c *gin.Context) {
	var q dto.BookmarkQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, http.StatusBadRequest, "invalid query")
		return
	}
	status := q.Filter()

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.svc.List(ctx, middleware.Identity(c), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkListResponse{
		Bookmarks:     dto.BookmarksFromModels(list, h.media),
		CurrentStatus: status,
	})
}
