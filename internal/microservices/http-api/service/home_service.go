package service

import (
	"context"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/shared"
)

const (
	homeLatestBooks        = 4
	homeFeaturedAudiobooks = 3
	homeForumGroups        = 4
	homePinnedPosts        = 5
)

type HomeFeed struct {
	LatestBooks        []models.Book
	FeaturedAudiobooks []models.Audiobook
	ForumGroups        []models.ForumGroup
	PinnedPosts        []models.ForumPost
	Challenge          *models.ReadingChallenge
	Statuses           map[int64]string
}

type HomeService interface {
	Feed(ctx context.Context, identity shared.Identity) (*HomeFeed, error)
}

type homeService struct {
	books      BookService
	audiobooks AudiobookService
	forum      ForumService
	challenges ChallengeService
	statuses   StatusService
}

func NewHomeService(books BookService, audiobooks AudiobookService, forum ForumService, challenges ChallengeService, statuses StatusService) HomeService {
	return &homeService{books: books, audiobooks: audiobooks, forum: forum, challenges: challenges, statuses: statuses}
}

func (s *homeService) Feed(ctx context.Context, identity shared.Identity) (*HomeFeed, error) {
	var (
		feed HomeFeed
		err  error
	)
	if feed.LatestBooks, err = s.books.Latest(ctx, homeLatestBooks); err != nil {
		return nil, err
	}
	if feed.FeaturedAudiobooks, err = s.audiobooks.Featured(ctx, homeFeaturedAudiobooks); err != nil {
		return nil, err
	}
	if feed.ForumGroups, err = s.forum.Groups(ctx, homeForumGroups); err != nil {
		return nil, err
	}
	if feed.PinnedPosts, err = s.forum.Pinned(ctx, homePinnedPosts); err != nil {
		return nil, err
	}
	if feed.Challenge, err = s.challenges.Active(ctx); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(feed.LatestBooks))
	for _, b := range feed.LatestBooks {
		ids = append(ids, b.ID)
	}
	if feed.Statuses, err = s.statuses.StatusesFor(ctx, identity, ids); err != nil {
		return nil, err
	}
	return &feed, nil
}
