package service

import (
	"context"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
)

type ChallengeService interface {
	// Active is nil when no challenge is running.
	Active(ctx context.Context) (*models.ReadingChallenge, error)
}

type challengeService struct {
	repo repository.ChallengeRepository
}

func NewChallengeService(repo repository.ChallengeRepository) ChallengeService {
	return &challengeService{repo: repo}
}

func (s *challengeService) Active(ctx context.Context) (*models.ReadingChallenge, error) {
	return s.repo.Active(ctx)
}
