package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Count(ctx context.Context, q repository.BookQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, q repository.BookQuery) ([]models.Book, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetBySlug(ctx context.Context, slug string) (*models.Book, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookRepository) Latest(ctx context.Context, limit int) ([]models.Book, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Similar(ctx context.Context, book models.Book, limit int) ([]models.Book, error) {
	args := m.Called(ctx, book, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Sample(ctx context.Context, genreIDs []int64, limit int) ([]models.Book, error) {
	args := m.Called(ctx, genreIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, b *models.Book) error {
	return m.Called(ctx, b).Error(0)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Upsert(ctx context.Context, s *models.UserBookStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatusRepository) Remove(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockStatusRepository) List(ctx context.Context, userID, status string) ([]models.UserBookStatus, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserBookStatus), args.Error(1)
}

func (m *MockStatusRepository) ForBooks(ctx context.Context, userID string, bookIDs []int64) ([]models.UserBookStatus, error) {
	args := m.Called(ctx, userID, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserBookStatus), args.Error(1)
}

func (m *MockStatusRepository) Get(ctx context.Context, userID string, bookID int64) (*models.UserBookStatus, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserBookStatus), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Ensure(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Questions(ctx context.Context) ([]models.RecommendationQuiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecommendationQuiz), args.Error(1)
}

func (m *MockQuizRepository) OptionsByIDs(ctx context.Context, ids []int64) ([]models.QuizOption, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizOption), args.Error(1)
}

type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) CountPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockForumRepository) ListPosts(ctx context.Context, limit, offset int) ([]models.ForumPost, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) Pinned(ctx context.Context, limit int) ([]models.ForumPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) GetPost(ctx context.Context, id int64) (*models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockForumRepository) CreatePost(ctx context.Context, p *models.ForumPost) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockForumRepository) Groups(ctx context.Context, limit int) ([]models.ForumGroup, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumGroup), args.Error(1)
}

func (m *MockForumRepository) GroupExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Active(ctx context.Context) (*models.ReadingChallenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingChallenge), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Genres(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockCatalogRepository) Authors(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockCatalogRepository) ActiveMarquee(ctx context.Context) ([]models.MarqueeMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarqueeMessage), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockAudiobookRepository struct {
	mock.Mock
}

func (m *MockAudiobookRepository) List(ctx context.Context) ([]models.Audiobook, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Audiobook), args.Error(1)
}

func (m *MockAudiobookRepository) Featured(ctx context.Context, limit int) ([]models.Audiobook, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Audiobook), args.Error(1)
}

func (m *MockAudiobookRepository) GetBySlug(ctx context.Context, slug string) (*models.Audiobook, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Audiobook), args.Error(1)
}

// memoryCache is an in-process cache.Cache for tests.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }
