package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinMatchPercentage = 0
	MaxMatchPercentage = 100
)

type Book struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"size:200;not null"`
	AuthorID        int64     `json:"author_id" gorm:"not null;index"`
	Description     string    `json:"description" gorm:"type:text;not null;default:''"`
	GenreID         *int64    `json:"genre_id,omitempty" gorm:"index"`
	CoverImage      string    `json:"cover_image" gorm:"size:255"`
	MatchPercentage int       `json:"match_percentage" gorm:"not null;default:0;check:chk_books_match_percentage,match_percentage BETWEEN 0 AND 100"`
	IsNew           bool      `json:"is_new" gorm:"not null;default:false"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;size:220;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// LegacyGenre holds the free-text genre of the first schema generation.
	// Only the legacy migration reads it.
	LegacyGenre *string `json:"-" gorm:"column:legacy_genre;size:50"`

	// associations
	Author Author `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Genre  *Genre `json:"genre,omitempty" gorm:"foreignKey:GenreID;constraint:OnDelete:SET NULL;"`
}

func (Book) TableName() string {
	return "books"
}

// ClampMatchPercentage forces an editorial score into [0, 100].
func ClampMatchPercentage(p int) int {
	if p < MinMatchPercentage {
		return MinMatchPercentage
	}
	if p > MaxMatchPercentage {
		return MaxMatchPercentage
	}
	return p
}

func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.MatchPercentage = ClampMatchPercentage(b.MatchPercentage)
	return nil
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, b.TableName(), b.Title, "book")
	if err != nil {
		return err
	}
	b.Slug = s
	return nil
}
