package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AudiobookHandler struct {
	svc   service.AudiobookService
	media media.Resolver
}

func NewAudiobookHandler(svc service.AudiobookService, m media.Resolver) *AudiobookHandler {
	return &AudiobookHandler{svc: svc, media: m}
}

func (h *AudiobookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.Detail)
}

func (h *AudiobookHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audiobooks": dto.AudiobooksFromModels(list, h.media)})
}

func (h *AudiobookHandler) Detail(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	a, err := h.svc.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audiobook": dto.AudiobookFromModel(*a, h.media)})
}
