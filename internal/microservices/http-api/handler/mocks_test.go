package handler_test

import (
	"context"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/service"
	"exlibris/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const testUserID = "5b1f0a52-3f3e-4c59-9a4e-1f1b4a9c2d10"

var reader = shared.Identity{UserID: testUserID, Username: "reader", Role: "user"}

// mockAuthMiddleware stands in for token validation.
func mockAuthMiddleware(identity shared.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity.Authenticated() {
			middleware.SetIdentity(c, identity)
		}
		c.Next()
	}
}

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) List(ctx context.Context, f dto.BookFilter) (*service.BookPage, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookPage), args.Error(1)
}

func (m *MockBookService) Detail(ctx context.Context, slug string) (*models.Book, []models.Book, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Book), args.Get(1).([]models.Book), args.Error(2)
}

func (m *MockBookService) Latest(ctx context.Context, limit int) ([]models.Book, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Book), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Update(ctx context.Context, identity shared.Identity, bookID int64, status string) error {
	return m.Called(ctx, identity, bookID, status).Error(0)
}

func (m *MockStatusService) Remove(ctx context.Context, identity shared.Identity, bookmarkID int64) error {
	return m.Called(ctx, identity, bookmarkID).Error(0)
}

func (m *MockStatusService) List(ctx context.Context, identity shared.Identity, status string) ([]models.UserBookStatus, error) {
	args := m.Called(ctx, identity, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserBookStatus), args.Error(1)
}

func (m *MockStatusService) StatusFor(ctx context.Context, identity shared.Identity, bookID int64) (string, error) {
	args := m.Called(ctx, identity, bookID)
	return args.String(0), args.Error(1)
}

func (m *MockStatusService) StatusesFor(ctx context.Context, identity shared.Identity, bookIDs []int64) (map[int64]string, error) {
	args := m.Called(ctx, identity, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Questions(ctx context.Context) ([]models.RecommendationQuiz, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RecommendationQuiz), args.Error(1)
}

func (m *MockQuizService) Recommend(ctx context.Context, identity shared.Identity, optionIDs []int64) ([]service.Recommendation, error) {
	args := m.Called(ctx, identity, optionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Recommendation), args.Error(1)
}

type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) Page(ctx context.Context, page int) (*service.ForumPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ForumPage), args.Error(1)
}

func (m *MockForumService) Groups(ctx context.Context, limit int) ([]models.ForumGroup, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.ForumGroup), args.Error(1)
}

func (m *MockForumService) Pinned(ctx context.Context, limit int) ([]models.ForumPost, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.ForumPost), args.Error(1)
}

func (m *MockForumService) View(ctx context.Context, id int64) (*models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumService) Create(ctx context.Context, identity shared.Identity, in dto.CreatePostDTO) (*models.ForumPost, error) {
	args := m.Called(ctx, identity, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

type MockAudiobookService struct {
	mock.Mock
}

func (m *MockAudiobookService) List(ctx context.Context) ([]models.Audiobook, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Audiobook), args.Error(1)
}

func (m *MockAudiobookService) Featured(ctx context.Context, limit int) ([]models.Audiobook, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Audiobook), args.Error(1)
}

func (m *MockAudiobookService) GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Audiobook), args.Error(1)
}

type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Active(ctx context.Context) (*models.ReadingChallenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingChallenge), args.Error(1)
}

type MockHomeService struct {
	mock.Mock
}

func (m *MockHomeService) Feed(ctx context.Context, identity shared.Identity) (*service.HomeFeed, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomeFeed), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, identity shared.Identity) (*service.Profile, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Profile), args.Error(1)
}
