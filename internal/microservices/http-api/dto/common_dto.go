package dto

import (
	"exlibris/internal/microservices/http-api/models"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse is the body of mutations that return nothing else.
type SuccessResponse struct {
	Success bool `json:"success"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name, Slug: g.Slug}
}

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
	Slug string `json:"slug"`
}

func AuthorFromModel(a models.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, Bio: a.Bio, Slug: a.Slug}
}

type MarqueeResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// CommonContext is the sidebar data every page of the site shows.
type CommonContext struct {
	MarqueeMessages []MarqueeResponse `json:"marquee_messages"`
	Genres          []GenreResponse   `json:"genres"`
	Authors         []AuthorResponse  `json:"authors"`
	MediaURL        string            `json:"media_url"`
}

func NewCommonContext(marquee []models.MarqueeMessage, genres []models.Genre, authors []models.Author, mediaURL string) CommonContext {
	out := CommonContext{
		MarqueeMessages: make([]MarqueeResponse, 0, len(marquee)),
		Genres:          make([]GenreResponse, 0, len(genres)),
		Authors:         make([]AuthorResponse, 0, len(authors)),
		MediaURL:        mediaURL,
	}
	for _, m := range marquee {
		out.MarqueeMessages = append(out.MarqueeMessages, MarqueeResponse{ID: m.ID, Text: m.Text})
	}
	for _, g := range genres {
		out.Genres = append(out.Genres, GenreFromModel(g))
	}
	for _, a := range authors {
		out.Authors = append(out.Authors, AuthorFromModel(a))
	}
	return out
}

type ChallengeResponse struct {
	ID                 int64 `json:"id"`
	Year               int   `json:"year"`
	Goal               int   `json:"goal"`
	Current            int   `json:"current"`
	ProgressPercentage int   `json:"progress_percentage"`
}

// ChallengeFromModel returns nil when there is no active challenge.
func ChallengeFromModel(c *models.ReadingChallenge) *ChallengeResponse {
	if c == nil {
		return nil
	}
	return &ChallengeResponse{
		ID:                 c.ID,
		Year:               c.Year,
		Goal:               c.Goal,
		Current:            c.Current,
		ProgressPercentage: c.ProgressPercentage(),
	}
}

// StatusMap indexes a user's statuses by book id.
func StatusMap(statuses []models.UserBookStatus) map[int64]string {
	out := make(map[int64]string, len(statuses))
	for _, s := range statuses {
		out[s.BookID] = s.Status
	}
	return out
}
