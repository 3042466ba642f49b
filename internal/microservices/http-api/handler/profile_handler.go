package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc   service.ProfileService
	media media.Resolver
}

func NewProfileHandler(svc service.ProfileService, m media.Resolver) *ProfileHandler {
	return &ProfileHandler{svc: svc, media: m}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.svc.Get(ctx, middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileFromModel(*p.Profile, p.Bookmarks, p.Challenge, h.media))
}
