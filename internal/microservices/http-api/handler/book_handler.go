package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books    service.BookService
	statuses service.StatusService
	media    media.Resolver
}

func NewBookHandler(books service.BookService, statuses service.StatusService, m media.Resolver) *BookHandler {
	return &BookHandler{books: books, statuses: statuses, media: m}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.Detail)
}

// List handles GET /api/books?search=&genre=&author=&sort=&page=
// Bad parameters never fail the request; they fall back to defaults.
func (h *BookHandler) List(c *gin.Context) {
	var params dto.BookQueryParams
	_ = c.ShouldBindQuery(&params)
	filter := params.Filter()

	ctx, cancel := requestContext(c)
	defer cancel()

	page, err := h.books.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	ids := make([]int64, 0, len(page.Books))
	for _, b := range page.Books {
		ids = append(ids, b.ID)
	}
	statuses, err := h.statuses.StatusesFor(ctx, middleware.Identity(c), ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookListResponse{
		Books:      dto.BooksFromModels(page.Books, h.media, statuses),
		Pagination: page.Page,
		Search:     filter.Search,
		GenreID:    filter.GenreID,
		AuthorID:   filter.AuthorID,
		Sort:       filter.Sort,
	})
}

// Detail handles GET /api/books/:slug
func (h *BookHandler) Detail(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	book, similar, err := h.books.Detail(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := h.statuses.StatusFor(ctx, middleware.Identity(c), book.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.BookFromModel(*book, h.media)
	resp.UserStatus = status
	c.JSON(http.StatusOK, dto.BookDetailResponse{
		Book:         resp,
		SimilarBooks: dto.BooksFromModels(similar, h.media, nil),
		UserStatus:   status,
	})
}
