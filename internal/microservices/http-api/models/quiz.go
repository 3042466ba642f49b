package models

import (
	"sort"

	"gorm.io/datatypes"
)

type RecommendationQuiz struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Question string `json:"question" gorm:"type:text;not null"`
	Order    int    `json:"order" gorm:"column:display_order;not null;default:0;index"`

	Options []QuizOption `json:"options" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE;"`
}

func (RecommendationQuiz) TableName() string {
	return "recommendation_quizzes"
}

type QuizOption struct {
	ID           int64                            `json:"id" gorm:"primaryKey;autoIncrement"`
	QuizID       int64                            `json:"quiz_id" gorm:"not null;index"`
	Text         string                           `json:"text" gorm:"size:200;not null"`
	GenreWeights datatypes.JSONType[GenreWeights] `json:"genre_weights" gorm:"type:jsonb;not null;default:'{}'"`

	// LegacyGenreID is the single-genre reference of the first schema
	// generation, kept only as input for the legacy migration.
	LegacyGenreID *int64 `json:"-" gorm:"column:legacy_genre_id"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}

// Weights returns the option's genre weights, never nil.
func (o QuizOption) Weights() GenreWeights {
	w := o.GenreWeights.Data()
	if w == nil {
		return GenreWeights{}
	}
	return w
}

// GenreWeights maps a genre id to how strongly an answer points at it.
type GenreWeights map[int64]int

// Add sums other into w.
func (w GenreWeights) Add(other GenreWeights) {
	for genreID, weight := range other {
		w[genreID] += weight
	}
}

// Candidates lists the genres with a positive total weight, ascending by id.
func (w GenreWeights) Candidates() []int64 {
	ids := make([]int64, 0, len(w))
	for genreID, weight := range w {
		if weight > 0 {
			ids = append(ids, genreID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Max is the largest weight in w, 0 for an empty map.
func (w GenreWeights) Max() int {
	maxWeight := 0
	for _, weight := range w {
		if weight > maxWeight {
			maxWeight = weight
		}
	}
	return maxWeight
}
