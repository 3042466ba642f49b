package dto

import (
	"strings"
	"time"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"
)

// UpdateStatusRequest used for POST /api/update-book-status, as a form or JSON.
type UpdateStatusRequest struct {
	BookID int64  `json:"book_id" form:"book_id" binding:"required,gt=0"`
	Status string `json:"status" form:"status" binding:"required"`
}

// RemoveBookmarkRequest used for POST /api/remove-bookmark
type RemoveBookmarkRequest struct {
	BookmarkID int64 `json:"bookmark_id" form:"bookmark_id" binding:"required,gt=0"`
}

// BookmarkQuery binds GET /api/bookmarks
type BookmarkQuery struct {
	Status string `form:"status"`
}

// Filter is the requested status, "all" when none was given.
func (q BookmarkQuery) Filter() string {
	if s := strings.TrimSpace(q.Status); s != "" {
		return s
	}
	return models.StatusAll
}

type BookmarkResponse struct {
	ID      int64        `json:"id"`
	Status  string       `json:"status"`
	AddedAt time.Time    `json:"added_at"`
	Book    BookResponse `json:"book"`
}

func BookmarkFromModel(s models.UserBookStatus, r media.Resolver) BookmarkResponse {
	resp := BookmarkResponse{ID: s.ID, Status: s.Status, AddedAt: s.AddedAt}
	if s.Book != nil {
		resp.Book = BookFromModel(*s.Book, r)
	}
	return resp
}

func BookmarksFromModels(list []models.UserBookStatus, r media.Resolver) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(list))
	for _, s := range list {
		out = append(out, BookmarkFromModel(s, r))
	}
	return out
}

type BookmarkListResponse struct {
	Bookmarks     []BookmarkResponse `json:"bookmarks"`
	CurrentStatus string             `json:"current_status"`
}
