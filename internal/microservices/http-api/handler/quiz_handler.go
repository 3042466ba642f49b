package handler

import (
	"net/http"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	svc   service.QuizService
	media media.Resolver
}

func NewQuizHandler(svc service.QuizService, m media.Resolver) *QuizHandler {
	return &QuizHandler{svc: svc, media: m}
}

// Questions handles GET /api/quiz
func (h *QuizHandler) Questions(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.svc.Questions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.QuizQuestionsFromModels(list)})
}

// Submit handles POST /api/submit-quiz with {"answers":[{"option_id":1}]}
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recs, err := h.svc.Recommend(ctx, middleware.Identity(c), req.OptionIDs())
	if err != nil {
		respondError(c, err)
		return
	}

	books := make([]dto.RecommendedBook, 0, len(recs))
	for _, r := range recs {
		books = append(books, dto.RecommendedBookFromModel(r.Book, r.MatchPercentage, h.media))
	}
	c.JSON(http.StatusOK, dto.QuizResultResponse{Success: true, Books: books})
}
