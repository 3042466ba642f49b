package service

import (
	"context"
	"time"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/pkg/cache"
	"exlibris/pkg/metrics"

	"github.com/rs/zerolog/log"
)

const commonContextKey = "context:common"

// ContextService builds the sidebar data shared by every page. Results are
// cached when a cache is configured; a failing cache only costs a rebuild.
type ContextService interface {
	Common(ctx context.Context) (dto.CommonContext, error)
	Invalidate(ctx context.Context) error
}

type contextService struct {
	repo     repository.CatalogRepository
	cache    cache.Cache
	ttl      time.Duration
	mediaURL string
}

func NewContextService(repo repository.CatalogRepository, c cache.Cache, ttl time.Duration, mediaURL string) ContextService {
	if c == nil {
		c = cache.Noop{}
	}
	return &contextService{repo: repo, cache: c, ttl: ttl, mediaURL: mediaURL}
}

func (s *contextService) Common(ctx context.Context) (dto.CommonContext, error) {
	var cached dto.CommonContext
	found, err := s.cache.Get(ctx, commonContextKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("common context cache read failed")
	}
	metrics.RecordContextCache(found)
	if found {
		return cached, nil
	}

	marquee, err := s.repo.ActiveMarquee(ctx)
	if err != nil {
		return dto.CommonContext{}, err
	}
	genres, err := s.repo.Genres(ctx)
	if err != nil {
		return dto.CommonContext{}, err
	}
	authors, err := s.repo.Authors(ctx)
	if err != nil {
		return dto.CommonContext{}, err
	}

	out := dto.NewCommonContext(marquee, genres, authors, s.mediaURL)
	if s.ttl > 0 {
		if err := s.cache.Set(ctx, commonContextKey, out, s.ttl); err != nil {
			log.Warn().Err(err).Msg("common context cache write failed")
		}
	}
	return out, nil
}

// Invalidate drops the cached context, used after catalog changes.
func (s *contextService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, commonContextKey)
}
