package service

import (
	"context"
	"errors"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
	"exlibris/pkg/metrics"
)

type ForumPage struct {
	Posts     []models.ForumPost
	Page      shared.Page
	Groups    []models.ForumGroup
	Challenge *models.ReadingChallenge
}

type ForumService interface {
	Page(ctx context.Context, page int) (*ForumPage, error)
	Groups(ctx context.Context, limit int) ([]models.ForumGroup, error)
	Pinned(ctx context.Context, limit int) ([]models.ForumPost, error)
	View(ctx context.Context, id int64) (*models.ForumPost, error)
	Create(ctx context.Context, identity shared.Identity, in dto.CreatePostDTO) (*models.ForumPost, error)
}

type forumService struct {
	repo       repository.ForumRepository
	challenges repository.ChallengeRepository
	users      UserService
}

func NewForumService(repo repository.ForumRepository, challenges repository.ChallengeRepository, users UserService) ForumService {
	return &forumService{repo: repo, challenges: challenges, users: users}
}

func (s *forumService) Page(ctx context.Context, page int) (*ForumPage, error) {
	total, err := s.repo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	p := shared.Paginate(total, page, shared.ForumPostPageSize)

	posts := []models.ForumPost{}
	if total > 0 {
		if posts, err = s.repo.ListPosts(ctx, p.Size, p.Offset()); err != nil {
			return nil, err
		}
	}
	groups, err := s.repo.Groups(ctx, 0)
	if err != nil {
		return nil, err
	}
	challenge, err := s.challenges.Active(ctx)
	if err != nil {
		return nil, err
	}
	return &ForumPage{Posts: posts, Page: p, Groups: groups, Challenge: challenge}, nil
}

func (s *forumService) Groups(ctx context.Context, limit int) ([]models.ForumGroup, error) {
	return s.repo.Groups(ctx, limit)
}

func (s *forumService) Pinned(ctx context.Context, limit int) ([]models.ForumPost, error) {
	return s.repo.Pinned(ctx, limit)
}

// View counts the view in the store first, then returns the post with the
// updated counter.
func (s *forumService) View(ctx context.Context, id int64) (*models.ForumPost, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	metrics.RecordForumView()

	post, err := s.repo.GetPost(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

func (s *forumService) Create(ctx context.Context, identity shared.Identity, in dto.CreatePostDTO) (*models.ForumPost, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !models.ValidCategories[in.Category] {
		return nil, ErrInvalidCategory
	}
	if in.ForumGroupID != nil {
		ok, err := s.repo.GroupExists(ctx, *in.ForumGroupID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForumGroupNotFound
		}
	}
	if err := s.users.Ensure(ctx, identity); err != nil {
		return nil, err
	}

	post := in.ToModel(identity.UserID)
	if err := s.repo.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForumGroupNotFound
		}
		return nil, err
	}
	post.User = models.User{ID: identity.UserID, Username: identity.Username}
	return &post, nil
}
