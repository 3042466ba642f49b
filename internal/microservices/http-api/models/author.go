package models

import "gorm.io/gorm"

type Author struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:200;not null"`
	Bio  string `json:"bio" gorm:"type:text"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:220;not null"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, a.TableName(), a.Name, "author")
	if err != nil {
		return err
	}
	a.Slug = s
	return nil
}
