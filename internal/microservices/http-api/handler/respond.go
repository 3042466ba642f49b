package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"exlibris/internal/microservices/http-api/dto"
	"exlibris/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: msg})
}

// respondError maps domain errors to status codes. Anything unknown is
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrAudiobookNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrBookmarkNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrForumGroupNotFound):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrExpiredToken):
		fail(c, http.StatusUnauthorized, err.Error())
	default:
		_ = c.Error(err)
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
