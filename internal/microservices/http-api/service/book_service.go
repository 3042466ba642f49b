package service

import (
	"context"
	"errors"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
)

const similarBooksLimit = 3

// BookPage is one page of the filtered catalog.
type BookPage struct {
	Books []models.Book
	Page  shared.Page
}

type BookService interface {
	List(ctx context.Context, f dto.BookFilter) (*BookPage, error)
	Detail(ctx context.Context, slug string) (*models.Book, []models.Book, error)
	Latest(ctx context.Context, limit int) ([]models.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

// List counts first so an out-of-range page lands on the last page instead
// of an empty one.
func (s *bookService) List(ctx context.Context, f dto.BookFilter) (*BookPage, error) {
	q := repository.BookQuery{
		Search:   f.Search,
		GenreID:  f.GenreID,
		AuthorID: f.AuthorID,
		Sort:     dto.NormalizeBookSort(f.Sort),
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	page := shared.Paginate(total, f.Page, shared.BookPageSize)
	books := []models.Book{}
	if total > 0 {
		q.Limit = page.Size
		q.Offset = page.Offset()
		if books, err = s.repo.List(ctx, q); err != nil {
			return nil, err
		}
	}
	return &BookPage{Books: books, Page: page}, nil
}

func (s *bookService) Detail(ctx context.Context, slug string) (*models.Book, []models.Book, error) {
	book, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrBookNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	similar, err := s.repo.Similar(ctx, *book, similarBooksLimit)
	if err != nil {
		return nil, nil, err
	}
	return book, similar, nil
}

func (s *bookService) Latest(ctx context.Context, limit int) ([]models.Book, error) {
	return s.repo.Latest(ctx, limit)
}
