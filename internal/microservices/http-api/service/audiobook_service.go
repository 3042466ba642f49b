package service

import (
	"context"
	"errors"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
)

type AudiobookService interface {
	List(ctx context.Context) ([]models.Audiobook, error)
	Featured(ctx context.Context, limit int) ([]models.Audiobook, error)
	GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error)
}

type audiobookService struct {
	repo repository.AudiobookRepository
}

func NewAudiobookService(repo repository.AudiobookRepository) AudiobookService {
	return &audiobookService{repo: repo}
}

func (s *audiobookService) List(ctx context.Context) ([]models.Audiobook, error) {
	return s.repo.List(ctx)
}

func (s *audiobookService) Featured(ctx context.Context, limit int) ([]models.Audiobook, error) {
	return s.repo.Featured(ctx, limit)
}

func (s *audiobookService) GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAudiobookNotFound
	}
	return a, err
}
