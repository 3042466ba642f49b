package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Questions(ctx context.Context) ([]models.RecommendationQuiz, error)
	OptionsByIDs(ctx context.Context, ids []int64) ([]models.QuizOption, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Questions(ctx context.Context) ([]models.RecommendationQuiz, error) {
	var list []models.RecommendationQuiz
	if err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Order("display_order asc, id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list quiz questions: %w", err)
	}
	return list, nil
}

// OptionsByIDs resolves answer ids; unknown ids are simply absent from the result.
func (r *quizRepository) OptionsByIDs(ctx context.Context, ids []int64) ([]models.QuizOption, error) {
	list := []models.QuizOption{}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("resolve quiz options: %w", err)
	}
	return list, nil
}
