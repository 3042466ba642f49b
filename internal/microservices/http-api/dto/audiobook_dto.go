package dto

import (
	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"
)

type AudiobookResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	CoverURL        string         `json:"cover_url"`
	DurationSeconds int64          `json:"duration_seconds"`
	DurationDisplay string         `json:"duration_display"`
	IsFeatured      bool           `json:"is_featured"`
	Order           int            `json:"order"`
	Author          AuthorResponse `json:"author"`
}

func AudiobookFromModel(a models.Audiobook, r media.Resolver) AudiobookResponse {
	return AudiobookResponse{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		CoverURL:        r.URL(a.CoverImage),
		DurationSeconds: int64(a.Duration.Seconds()),
		DurationDisplay: a.DurationDisplay(),
		IsFeatured:      a.IsFeatured,
		Order:           a.Order,
		Author:          AuthorFromModel(a.Author),
	}
}

func AudiobooksFromModels(list []models.Audiobook, r media.Resolver) []AudiobookResponse {
	out := make([]AudiobookResponse, 0, len(list))
	for _, a := range list {
		out = append(out, AudiobookFromModel(a, r))
	}
	return out
}
