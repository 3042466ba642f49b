package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusRepository interface {
	Upsert(ctx context.Context, s *models.UserBookStatus) error
	Remove(ctx context.Context, userID string, id int64) error
	List(ctx context.Context, userID, status string) ([]models.UserBookStatus, error)
	ForBooks(ctx context.Context, userID string, bookIDs []int64) ([]models.UserBookStatus, error)
	Get(ctx context.Context, userID string, bookID int64) (*models.UserBookStatus, error)
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

// upsertOnUserBook overwrites only the status of an existing (user, book)
// row; added_at keeps its original value.
var upsertOnUserBook = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"status"}),
}

func (r *statusRepository) Upsert(ctx context.Context, s *models.UserBookStatus) error {
	if err := r.db.WithContext(ctx).
		Clauses(upsertOnUserBook).
		Create(s).Error; err != nil {
		if missingReference(err) {
			return ErrNotFound
		}
		return fmt.Errorf("upsert book status: %w", err)
	}
	return nil
}

// Remove deletes a bookmark only when userID owns it.
func (r *statusRepository) Remove(ctx context.Context, userID string, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.UserBookStatus{})
	if result.Error != nil {
		return fmt.Errorf("remove bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the user's bookmarks, newest first. An empty status or
// "all" returns every status.
func (r *statusRepository) List(ctx context.Context, userID, status string) ([]models.UserBookStatus, error) {
	var list []models.UserBookStatus
	db := r.db.WithContext(ctx).
		Preload("Book.Author").
		Preload("Book.Genre").
		Where("user_id = ?", userID)
	if status != "" && status != models.StatusAll {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("added_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return list, nil
}

func (r *statusRepository) ForBooks(ctx context.Context, userID string, bookIDs []int64) ([]models.UserBookStatus, error) {
	list := []models.UserBookStatus{}
	if len(bookIDs) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id IN ?", userID, bookIDs).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("statuses for books: %w", err)
	}
	return list, nil
}

func (r *statusRepository) Get(ctx context.Context, userID string, bookID int64) (*models.UserBookStatus, error) {
	var s models.UserBookStatus
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}
