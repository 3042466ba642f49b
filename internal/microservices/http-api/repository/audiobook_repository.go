package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type AudiobookRepository interface {
	List(ctx context.Context) ([]models.Audiobook, error)
	Featured(ctx context.Context, limit int) ([]models.Audiobook, error)
	GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error)
}

type audiobookRepository struct {
	db *gorm.DB
}

func NewAudiobookRepository(db *gorm.DB) AudiobookRepository {
	return &audiobookRepository{db: db}
}

func (r *audiobookRepository) List(ctx context.Context) ([]models.Audiobook, error) {
	var list []models.Audiobook
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("display_order asc, id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list audiobooks: %w", err)
	}
	return list, nil
}

func (r *audiobookRepository) Featured(ctx context.Context, limit int) ([]models.Audiobook, error) {
	var list []models.Audiobook
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("is_featured = ?", true).
		Order("display_order asc, id asc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("featured audiobooks: %w", err)
	}
	return list, nil
}

func (r *audiobookRepository) GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error) {
	var a models.Audiobook
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}
