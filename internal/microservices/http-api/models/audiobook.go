package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Audiobook struct {
	ID         int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string        `json:"title" gorm:"size:200;not null"`
	AuthorID   int64         `json:"author_id" gorm:"not null;index"`
	Duration   time.Duration `json:"duration" gorm:"not null;default:0"`
	CoverImage string        `json:"cover_image" gorm:"size:255"`
	IsFeatured bool          `json:"is_featured" gorm:"not null;default:false;index"`
	Order      int           `json:"order" gorm:"column:display_order;not null;default:0;index"`
	Slug       string        `json:"slug" gorm:"uniqueIndex;size:220;not null"`

	Author Author `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Audiobook) TableName() string {
	return "audiobooks"
}

func (a *Audiobook) BeforeCreate(tx *gorm.DB) error {
	if a.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, a.TableName(), a.Title, "audiobook")
	if err != nil {
		return err
	}
	a.Slug = s
	return nil
}

// DurationDisplay renders the running time as HH:MM:SS.
func (a Audiobook) DurationDisplay() string {
	if a.Duration <= 0 {
		return "00:00:00"
	}
	total := int64(a.Duration / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
