package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*models.UserProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the user's profile, creating an empty one on first access.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.db.WithContext(ctx).
		Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&p).Error; err != nil {
		return nil, fmt.Errorf("get or create profile: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ReadingChallenge").
		First(&p, p.ID).Error; err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}
