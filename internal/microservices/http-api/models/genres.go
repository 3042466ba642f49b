package models

import "gorm.io/gorm"

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:100;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:120;not null"`
}

func (Genre) TableName() string {
	return "genres"
}

// BeforeCreate derives the slug from the name when none was given.
func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, g.TableName(), g.Name, "genre")
	if err != nil {
		return err
	}
	g.Slug = s
	return nil
}
