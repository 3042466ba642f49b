package service

import (
	"context"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
)

type Profile struct {
	Profile   *models.UserProfile
	Bookmarks []models.UserBookStatus
	Challenge *models.ReadingChallenge
}

type ProfileService interface {
	Get(ctx context.Context, identity shared.Identity) (*Profile, error)
}

type profileService struct {
	repo       repository.ProfileRepository
	statuses   repository.StatusRepository
	challenges repository.ChallengeRepository
	users      UserService
}

func NewProfileService(repo repository.ProfileRepository, statuses repository.StatusRepository, challenges repository.ChallengeRepository, users UserService) ProfileService {
	return &profileService{repo: repo, statuses: statuses, challenges: challenges, users: users}
}

// Get creates the profile on first access.
func (s *profileService) Get(ctx context.Context, identity shared.Identity) (*Profile, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := s.users.Ensure(ctx, identity); err != nil {
		return nil, err
	}
	p, err := s.repo.GetOrCreate(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.statuses.List(ctx, identity.UserID, models.StatusAll)
	if err != nil {
		return nil, err
	}
	challenge, err := s.challenges.Active(ctx)
	if err != nil {
		return nil, err
	}
	return &Profile{Profile: p, Bookmarks: bookmarks, Challenge: challenge}, nil
}
