// Package migrations holds one-off data migrations that AutoMigrate cannot
// express.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exlibris/internal/microservices/http-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report counts what a legacy run changed.
type Report struct {
	BooksLinked      int
	GenresCreated    int
	OptionsConverted int
	LegacyCleared    int
}

type legacyBook struct {
	ID          int64
	GenreID     *int64
	LegacyGenre *string
}

type legacyOption struct {
	ID            int64
	LegacyGenreID *int64
	GenreWeights  datatypes.JSONType[models.GenreWeights]
}

// Legacy converts the first-generation genre columns into the canonical
// schema inside one transaction. Book.legacy_genre becomes a Genre reference
// (genres are matched by slug and created when missing) and
// QuizOption.legacy_genre_id becomes a weight of 1 for that genre. Canonical
// values that are already set win; legacy columns are cleared either way,
// so a second run is a no-op.
func Legacy(ctx context.Context, db *gorm.DB) (Report, error) {
	var report Report
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := migrateBookGenres(tx, &report); err != nil {
			return err
		}
		return migrateQuizOptions(tx, &report)
	})
	if err != nil {
		return Report{}, err
	}

	log.Info().
		Int("books_linked", report.BooksLinked).
		Int("genres_created", report.GenresCreated).
		Int("options_converted", report.OptionsConverted).
		Int("legacy_cleared", report.LegacyCleared).
		Msg("legacy migration finished")
	return report, nil
}

// GenreKey normalizes a free-text genre to the slug it is matched by. An
// empty key means the text carries no usable genre.
func GenreKey(text string) (name, key string) {
	name = strings.Join(strings.Fields(text), " ")
	if name == "" {
		return "", ""
	}
	return name, models.MakeSlug(name, "")
}

// LegacyWeights is the weighted form of a single-genre quiz answer.
func LegacyWeights(genreID int64) models.GenreWeights {
	return models.GenreWeights{genreID: 1}
}

func migrateBookGenres(tx *gorm.DB, report *Report) error {
	var books []legacyBook
	if err := tx.Model(&models.Book{}).
		Select("id", "genre_id", "legacy_genre").
		Where("legacy_genre IS NOT NULL").
		Order("id").
		Find(&books).Error; err != nil {
		return fmt.Errorf("load legacy books: %w", err)
	}

	resolved := make(map[string]int64)
	for _, b := range books {
		updates := map[string]interface{}{"legacy_genre": nil}

		name, key := GenreKey(*b.LegacyGenre)
		if b.GenreID == nil && key != "" {
			genreID, ok := resolved[key]
			if !ok {
				id, created, err := findOrCreateGenre(tx, name, key)
				if err != nil {
					return err
				}
				if created {
					report.GenresCreated++
				}
				resolved[key] = id
				genreID = id
			}
			updates["genre_id"] = genreID
			report.BooksLinked++
		}

		if err := tx.Model(&models.Book{}).Where("id = ?", b.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update book %d: %w", b.ID, err)
		}
		report.LegacyCleared++
	}
	return nil
}

func findOrCreateGenre(tx *gorm.DB, name, key string) (int64, bool, error) {
	var g models.Genre
	err := tx.Where("slug = ?", key).First(&g).Error
	if err == nil {
		return g.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("find genre %q: %w", key, err)
	}

	g = models.Genre{Name: name, Slug: key}
	if err := tx.Create(&g).Error; err != nil {
		return 0, false, fmt.Errorf("create genre %q: %w", key, err)
	}
	return g.ID, true, nil
}

func migrateQuizOptions(tx *gorm.DB, report *Report) error {
	var options []legacyOption
	if err := tx.Model(&models.QuizOption{}).
		Select("id", "legacy_genre_id", "genre_weights").
		Where("legacy_genre_id IS NOT NULL").
		Order("id").
		Find(&options).Error; err != nil {
		return fmt.Errorf("load legacy quiz options: %w", err)
	}

	for _, o := range options {
		updates := map[string]interface{}{"legacy_genre_id": nil}
		if len(o.GenreWeights.Data()) == 0 {
			updates["genre_weights"] = datatypes.NewJSONType(LegacyWeights(*o.LegacyGenreID))
			report.OptionsConverted++
		}
		if err := tx.Model(&models.QuizOption{}).Where("id = ?", o.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update quiz option %d: %w", o.ID, err)
		}
		report.LegacyCleared++
	}
	return nil
}
