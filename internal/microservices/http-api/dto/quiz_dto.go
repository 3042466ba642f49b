package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"
)

// OptionID accepts a JSON number or a numeric string. Anything else decodes
// without error into an invalid id so that the answer is skipped.
type OptionID struct {
	Value int64
	Valid bool
}

func (o *OptionID) UnmarshalJSON(data []byte) error {
	*o = OptionID{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	o.Value, o.Valid = n, true
	return nil
}

func (o OptionID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.Value, 10)), nil
}

type QuizAnswer struct {
	OptionID OptionID `json:"option_id"`
}

// QuizSubmitRequest used for POST /api/submit-quiz
type QuizSubmitRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

// OptionIDs returns the well-formed option ids in answer order.
func (r QuizSubmitRequest) OptionIDs() []int64 {
	ids := make([]int64, 0, len(r.Answers))
	for _, a := range r.Answers {
		if a.OptionID.Valid {
			ids = append(ids, a.OptionID.Value)
		}
	}
	return ids
}

// RecommendedBook is one entry of the quiz result.
type RecommendedBook struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	CoverURL        string `json:"cover_url"`
	MatchPercentage int    `json:"match_percentage"`
	Slug            string `json:"slug"`
}

func RecommendedBookFromModel(b models.Book, match int, r media.Resolver) RecommendedBook {
	return RecommendedBook{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author.Name,
		CoverURL:        r.URL(b.CoverImage),
		MatchPercentage: match,
		Slug:            b.Slug,
	}
}

type QuizResultResponse struct {
	Success bool              `json:"success"`
	Books   []RecommendedBook `json:"books"`
}

type QuizOptionResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type QuizQuestionResponse struct {
	ID       int64                `json:"id"`
	Question string               `json:"question"`
	Order    int                  `json:"order"`
	Options  []QuizOptionResponse `json:"options"`
}

func QuizQuestionsFromModels(list []models.RecommendationQuiz) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, 0, len(list))
	for _, q := range list {
		opts := make([]QuizOptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, QuizOptionResponse{ID: o.ID, Text: o.Text})
		}
		out = append(out, QuizQuestionResponse{ID: q.ID, Question: q.Question, Order: q.Order, Options: opts})
	}
	return out
}
