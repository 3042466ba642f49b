package handler

import (
	"net/http"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	svc service.ForumService
}

func NewForumHandler(svc service.ForumService) *ForumHandler {
	return &ForumHandler{svc: svc}
}

// RegisterRoutes mounts the read routes; write is wrapped by the caller so
// it can carry auth and rate limiting.
func (h *ForumHandler) RegisterRoutes(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	rg.GET("", h.Index)
	rg.GET("/groups", h.Groups)
	rg.GET("/posts/:id", h.Post)
	rg.POST("/posts", append(append([]gin.HandlerFunc{}, write...), h.Create)...)
}

// Index handles GET /api/forum?page=
func (h *ForumHandler) Index(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	page, err := h.svc.Page(ctx, dto.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ForumPageResponse{
		Posts:           dto.ForumPostsFromModels(page.Posts),
		Pagination:      page.Page,
		Groups:          dto.ForumGroupsFromModels(page.Groups),
		ActiveChallenge: dto.ChallengeFromModel(page.Challenge),
	})
}

func (h *ForumHandler) Groups(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	groups, err := h.svc.Groups(ctx, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forum_groups": dto.ForumGroupsFromModels(groups)})
}

// Post handles GET /api/forum/posts/:id; every call counts as a view.
func (h *ForumHandler) Post(c *gin.Context) {
	id, ok := dto.ParseID(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, service.ErrPostNotFound.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.svc.View(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": dto.ForumPostFromModel(*post)})
}

// Create handles POST /api/forum/posts
func (h *ForumHandler) Create(c *gin.Context) {
	var in dto.CreatePostDTO
	if err := c.ShouldBind(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid post: "+err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.svc.Create(ctx, middleware.Identity(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "post": dto.ForumPostFromModel(*post)})
}
