package dto

import (
	"strconv"
	"strings"
	"time"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/shared"
)

// Book sort keys accepted by GET /api/books.
const (
	SortTitle               = "title"
	SortTitleDesc           = "-title"
	SortCreatedAt           = "created_at"
	SortCreatedAtDesc       = "-created_at"
	SortMatchPercentage     = "match_percentage"
	SortMatchPercentageDesc = "-match_percentage"

	DefaultBookSort = SortCreatedAtDesc
)

var validBookSorts = map[string]bool{
	SortTitle:               true,
	SortTitleDesc:           true,
	SortCreatedAt:           true,
	SortCreatedAtDesc:       true,
	SortMatchPercentage:     true,
	SortMatchPercentageDesc: true,
}

// NormalizeBookSort maps anything but a known key to the default sort.
func NormalizeBookSort(raw string) string {
	raw = strings.TrimSpace(raw)
	if validBookSorts[raw] {
		return raw
	}
	return DefaultBookSort
}

// ParsePage never fails: anything that is not a positive integer is page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseID reads a positive id. ok is false for empty, malformed or
// non-positive input.
func ParseID(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// BookFilter is the parsed query string of the catalog listing.
type BookFilter struct {
	Search   string
	GenreID  *int64
	AuthorID *int64
	Sort     string
	Page     int
}

// BookQueryParams binds the raw catalog query string.
type BookQueryParams struct {
	Search string `form:"search"`
	Genre  string `form:"genre"`
	Author string `form:"author"`
	Sort   string `form:"sort"`
	Page   string `form:"page"`
}

// Filter turns raw params into a filter. Unusable genre and author ids are
// dropped instead of rejected.
func (p BookQueryParams) Filter() BookFilter {
	f := BookFilter{
		Search: strings.TrimSpace(p.Search),
		Sort:   NormalizeBookSort(p.Sort),
		Page:   ParsePage(p.Page),
	}
	if id, ok := ParseID(p.Genre); ok {
		f.GenreID = &id
	}
	if id, ok := ParseID(p.Author); ok {
		f.AuthorID = &id
	}
	return f
}

type BookResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description"`
	CoverURL        string         `json:"cover_url"`
	MatchPercentage int            `json:"match_percentage"`
	IsNew           bool           `json:"is_new"`
	CreatedAt       time.Time      `json:"created_at"`
	Author          AuthorResponse `json:"author"`
	Genre           *GenreResponse `json:"genre,omitempty"`
	UserStatus      string         `json:"user_status,omitempty"`
}

func BookFromModel(b models.Book, r media.Resolver) BookResponse {
	resp := BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Slug:            b.Slug,
		Description:     b.Description,
		CoverURL:        r.URL(b.CoverImage),
		MatchPercentage: b.MatchPercentage,
		IsNew:           b.IsNew,
		CreatedAt:       b.CreatedAt,
		Author:          AuthorFromModel(b.Author),
	}
	if b.Genre != nil {
		g := GenreFromModel(*b.Genre)
		resp.Genre = &g
	}
	return resp
}

// BooksFromModels converts a page of books, attaching the caller's status
// when statuses is non-nil.
func BooksFromModels(books []models.Book, r media.Resolver, statuses map[int64]string) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		resp := BookFromModel(b, r)
		resp.UserStatus = statuses[b.ID]
		out = append(out, resp)
	}
	return out
}

type BookListResponse struct {
	Books      []BookResponse `json:"books"`
	Pagination shared.Page    `json:"pagination"`
	Search     string         `json:"search"`
	GenreID    *int64         `json:"genre,omitempty"`
	AuthorID   *int64         `json:"author,omitempty"`
	Sort       string         `json:"sort"`
}

type BookDetailResponse struct {
	Book         BookResponse   `json:"book"`
	SimilarBooks []BookResponse `json:"similar_books"`
	UserStatus   string         `json:"user_status,omitempty"`
}
