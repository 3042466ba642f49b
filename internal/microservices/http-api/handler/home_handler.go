package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the pages that aggregate several stores.
type SiteHandler struct {
	home       service.HomeService
	common     service.ContextService
	challenges service.ChallengeService
	media      media.Resolver
}

func NewSiteHandler(home service.HomeService, common service.ContextService, challenges service.ChallengeService, m media.Resolver) *SiteHandler {
	return &SiteHandler{home: home, common: common, challenges: challenges, media: m}
}

// Home handles GET /api/home
func (h *SiteHandler) Home(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	feed, err := h.home.Feed(ctx, middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{
		LatestBooks:        dto.BooksFromModels(feed.LatestBooks, h.media, feed.Statuses),
		FeaturedAudiobooks: dto.AudiobooksFromModels(feed.FeaturedAudiobooks, h.media),
		ForumGroups:        dto.ForumGroupsFromModels(feed.ForumGroups),
		PinnedPosts:        dto.ForumPostsFromModels(feed.PinnedPosts),
		ActiveChallenge:    dto.ChallengeFromModel(feed.Challenge),
		UserStatuses:       feed.Statuses,
	})
}

// Context handles GET /api/context, the sidebar shared by every page.
func (h *SiteHandler) Context(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	common, err := h.common.Common(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common)
}

// Challenge handles GET /api/challenge. No running challenge is not an error.
func (h *SiteHandler) Challenge(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	ch, err := h.challenges.Active(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenge": dto.ChallengeFromModel(ch)})
}
