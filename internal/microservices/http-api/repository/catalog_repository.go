package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the reference data shown next to every page.
type CatalogRepository interface {
	Genres(ctx context.Context) ([]models.Genre, error)
	Authors(ctx context.Context) ([]models.Author, error)
	ActiveMarquee(ctx context.Context) ([]models.MarqueeMessage, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Genres(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *catalogRepository) Authors(ctx context.Context) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get authors: %w", err)
	}
	return list, nil
}

func (r *catalogRepository) ActiveMarquee(ctx context.Context) ([]models.MarqueeMessage, error) {
	var list []models.MarqueeMessage
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get marquee messages: %w", err)
	}
	return list, nil
}
