package service

import (
	"context"
	"errors"
	"testing"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type homeFixture struct {
	books      *MockBookRepository
	audiobooks *MockAudiobookRepository
	forum      *MockForumRepository
	challenges *MockChallengeRepository
	statuses   *MockStatusRepository
	svc        HomeService
}

func newHomeFixture() homeFixture {
	f := homeFixture{
		books:      new(MockBookRepository),
		audiobooks: new(MockAudiobookRepository),
		forum:      new(MockForumRepository),
		challenges: new(MockChallengeRepository),
		statuses:   new(MockStatusRepository),
	}
	users := NewUserService(new(MockUserRepository))
	f.svc = NewHomeService(
		NewBookService(f.books),
		NewAudiobookService(f.audiobooks),
		NewForumService(f.forum, f.challenges, users),
		NewChallengeService(f.challenges),
		NewStatusService(f.statuses, f.books, users),
	)
	return f
}

func (f homeFixture) expectCatalog() {
	f.books.On("Latest", mock.Anything, 4).Return([]models.Book{{ID: 1, Title: "Dune"}, {ID: 2, Title: "Solaris"}}, nil)
	f.audiobooks.On("Featured", mock.Anything, 3).Return([]models.Audiobook{{ID: 7, Title: "The Hobbit"}}, nil)
	f.forum.On("Groups", mock.Anything, 4).Return([]models.ForumGroup{{ID: 3, Name: "Classics"}}, nil)
	f.forum.On("Pinned", mock.Anything, 5).Return([]models.ForumPost{{ID: 9, Title: "Rules", IsPinned: true}}, nil)
	f.challenges.On("Active", mock.Anything).Return(&models.ReadingChallenge{ID: 1, Goal: 50, Current: 12, IsActive: true}, nil)
}

func TestHomeFeedForReader(t *testing.T) {
	f := newHomeFixture()
	f.expectCatalog()
	f.statuses.On("ForBooks", mock.Anything, testUserID, []int64{1, 2}).
		Return([]models.UserBookStatus{{BookID: 2, Status: models.StatusReading}}, nil)

	feed, err := f.svc.Feed(context.Background(), reader)
	require.NoError(t, err)
	assert.Len(t, feed.LatestBooks, 2)
	assert.Len(t, feed.FeaturedAudiobooks, 1)
	assert.Len(t, feed.ForumGroups, 1)
	assert.Len(t, feed.PinnedPosts, 1)
	assert.Equal(t, 24, feed.Challenge.ProgressPercentage())
	assert.Equal(t, map[int64]string{2: models.StatusReading}, feed.Statuses)
	f.books.AssertExpectations(t)
	f.forum.AssertExpectations(t)
}

func TestHomeFeedAnonymousHasNoStatuses(t *testing.T) {
	f := newHomeFixture()
	f.expectCatalog()

	feed, err := f.svc.Feed(context.Background(), shared.Identity{})
	require.NoError(t, err)
	assert.Nil(t, feed.Statuses)
	f.statuses.AssertNotCalled(t, "ForBooks", mock.Anything, mock.Anything, mock.Anything)
}

func TestHomeFeedStopsOnStoreError(t *testing.T) {
	f := newHomeFixture()
	boom := errors.New("connection reset")
	f.books.On("Latest", mock.Anything, 4).Return([]models.Book(nil), boom)

	_, err := f.svc.Feed(context.Background(), reader)
	assert.ErrorIs(t, err, boom)
	f.audiobooks.AssertNotCalled(t, "Featured", mock.Anything, mock.Anything)
}
