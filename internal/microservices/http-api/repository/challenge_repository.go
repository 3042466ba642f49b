package repository

import (
	"context"
	"errors"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ChallengeRepository interface {
	// Active returns the newest active challenge, or nil when none is running.
	Active(ctx context.Context) (*models.ReadingChallenge, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Active(ctx context.Context) (*models.ReadingChallenge, error) {
	var c models.ReadingChallenge
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("year DESC, id DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("active challenge: %w", err)
	}
	return &c, nil
}
