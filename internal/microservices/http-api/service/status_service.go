package service

import (
	"context"
	"errors"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
	"exlibris/pkg/metrics"
)

// StatusService tracks which books a user is reading, planning, has read
// or abandoned. Each (user, book) pair holds at most one status.
type StatusService interface {
	Update(ctx context.Context, identity shared.Identity, bookID int64, status string) error
	Remove(ctx context.Context, identity shared.Identity, bookmarkID int64) error
	List(ctx context.Context, identity shared.Identity, status string) ([]models.UserBookStatus, error)
	StatusFor(ctx context.Context, identity shared.Identity, bookID int64) (string, error)
	StatusesFor(ctx context.Context, identity shared.Identity, bookIDs []int64) (map[int64]string, error)
}

type statusService struct {
	repo  repository.StatusRepository
	books repository.BookRepository
	users UserService
}

func NewStatusService(repo repository.StatusRepository, books repository.BookRepository, users UserService) StatusService {
	return &statusService{repo: repo, books: books, users: users}
}

func (s *statusService) Update(ctx context.Context, identity shared.Identity, bookID int64, status string) error {
	if !identity.Authenticated() {
		return ErrUnauthenticated
	}
	if !models.ValidStatuses[status] {
		return ErrInvalidStatus
	}
	ok, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBookNotFound
	}
	if err := s.users.Ensure(ctx, identity); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, &models.UserBookStatus{
		UserID: identity.UserID,
		BookID: bookID,
		Status: status,
	}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	metrics.RecordStatusUpsert(status)
	return nil
}

// Remove deletes a bookmark owned by the caller. Someone else's bookmark
// looks exactly like a missing one.
func (s *statusService) Remove(ctx context.Context, identity shared.Identity, bookmarkID int64) error {
	if !identity.Authenticated() {
		return ErrUnauthenticated
	}
	err := s.repo.Remove(ctx, identity.UserID, bookmarkID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookmarkNotFound
	}
	return err
}

// List filters by status; empty or "all" means every status.
func (s *statusService) List(ctx context.Context, identity shared.Identity, status string) ([]models.UserBookStatus, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if status == "" {
		status = models.StatusAll
	}
	if status != models.StatusAll && !models.ValidStatuses[status] {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, identity.UserID, status)
}

// StatusFor is "" for anonymous callers and untracked books.
func (s *statusService) StatusFor(ctx context.Context, identity shared.Identity, bookID int64) (string, error) {
	if !identity.Authenticated() {
		return "", nil
	}
	st, err := s.repo.Get(ctx, identity.UserID, bookID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return st.Status, nil
}

// StatusesFor returns nil for anonymous callers.
func (s *statusService) StatusesFor(ctx context.Context, identity shared.Identity, bookIDs []int64) (map[int64]string, error) {
	if !identity.Authenticated() {
		return nil, nil
	}
	list, err := s.repo.ForBooks(ctx, identity.UserID, bookIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(list))
	for _, st := range list {
		out[st.BookID] = st.Status
	}
	return out, nil
}
