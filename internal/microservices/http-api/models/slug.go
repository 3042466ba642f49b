package models

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// MakeSlug turns a title or name into a URL-safe identifier. Non-latin
// scripts are transliterated; fallback is used when nothing survives.
func MakeSlug(s, fallback string) string {
	out := slug.Make(s)
	if out == "" {
		return fallback
	}
	return out
}

// uniqueSlug derives a slug from source and appends -2, -3, ... until no row
// in table already uses it.
func uniqueSlug(tx *gorm.DB, table, source, fallback string) (string, error) {
	base := MakeSlug(source, fallback)
	candidate := base
	db := tx.Session(&gorm.Session{NewDB: true})
	for i := 2; ; i++ {
		var count int64
		if err := db.Table(table).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
