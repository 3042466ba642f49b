package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// BookQuery is a catalog view: filters are conjunctive and all optional.
type BookQuery struct {
	Search   string
	GenreID  *int64
	AuthorID *int64
	Sort     string
	Limit    int
	Offset   int
}

type BookRepository interface {
	Count(ctx context.Context, q BookQuery) (int64, error)
	List(ctx context.Context, q BookQuery) ([]models.Book, error)
	GetBySlug(ctx context.Context, slug string) (*models.Book, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Latest(ctx context.Context, limit int) ([]models.Book, error)
	Similar(ctx context.Context, book models.Book, limit int) ([]models.Book, error)
	Sample(ctx context.Context, genreIDs []int64, limit int) ([]models.Book, error)
	Create(ctx context.Context, b *models.Book) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// ties always break on id so paging is stable
var bookOrders = map[string]string{
	"title":             "books.title ASC, books.id ASC",
	"-title":            "books.title DESC, books.id DESC",
	"created_at":        "books.created_at ASC, books.id ASC",
	"-created_at":       "books.created_at DESC, books.id DESC",
	"match_percentage":  "books.match_percentage ASC, books.id ASC",
	"-match_percentage": "books.match_percentage DESC, books.id DESC",
}

func bookOrder(sort string) string {
	if o, ok := bookOrders[sort]; ok {
		return o
	}
	return bookOrders["-created_at"]
}

// bookFilter applies search, genre and author. Search matches title, author
// name or description, case-insensitively, with LIKE wildcards taken literally.
func bookFilter(q BookQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN authors ON authors.id = books.author_id")
		if q.Search != "" {
			p := containsPattern(q.Search)
			db = db.Where("(books.title ILIKE ? OR authors.name ILIKE ? OR books.description ILIKE ?)", p, p, p)
		}
		if q.GenreID != nil {
			db = db.Where("books.genre_id = ?", *q.GenreID)
		}
		if q.AuthorID != nil {
			db = db.Where("books.author_id = ?", *q.AuthorID)
		}
		return db
	}
}

func (r *bookRepository) Count(ctx context.Context, q BookQuery) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Scopes(bookFilter(q)).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}

func (r *bookRepository) List(ctx context.Context, q BookQuery) ([]models.Book, error) {
	var list []models.Book
	db := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Preload("Author").
		Preload("Genre").
		Scopes(bookFilter(q)).
		Order(bookOrder(q.Sort))
	if q.Limit > 0 {
		db = db.Limit(q.Limit).Offset(q.Offset)
	}
	if err := db.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

func (r *bookRepository) GetBySlug(ctx context.Context, slug string) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Where("slug = ?", slug).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *bookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check book: %w", err)
	}
	return count > 0, nil
}

func (r *bookRepository) Latest(ctx context.Context, limit int) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Order(bookOrder("-created_at")).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("latest books: %w", err)
	}
	return list, nil
}

// Similar returns other books of the same genre. A book without a genre has
// no similar books.
func (r *bookRepository) Similar(ctx context.Context, book models.Book, limit int) ([]models.Book, error) {
	list := []models.Book{}
	if book.GenreID == nil {
		return list, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Where("genre_id = ? AND id <> ?", *book.GenreID, book.ID).
		Order(bookOrder("-created_at")).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("similar books: %w", err)
	}
	return list, nil
}

// Sample picks up to limit random books whose genre is in genreIDs, or from
// the whole catalog when genreIDs is empty.
func (r *bookRepository) Sample(ctx context.Context, genreIDs []int64, limit int) ([]models.Book, error) {
	var list []models.Book
	db := r.db.WithContext(ctx).Preload("Author").Preload("Genre")
	if len(genreIDs) > 0 {
		db = db.Where("genre_id IN ?", genreIDs)
	}
	if err := db.Order("RANDOM()").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("sample books: %w", err)
	}
	return list, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}
