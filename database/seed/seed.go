// Package seed loads catalog fixtures into the database. Running it twice
// updates rows in place instead of duplicating them.
package seed

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result counts the rows written per table.
type Result struct {
	Genres      int
	Authors     int
	Books       int
	Audiobooks  int
	ForumGroups int
	Challenges  int
	Questions   int
	Marquee     int
}

// Apply writes fx in one transaction.
func Apply(ctx context.Context, db *gorm.DB, fx *Fixtures) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &seeder{tx: tx, genres: map[string]int64{}, authors: map[string]int64{}}
		steps := []func(*Fixtures, *Result) error{
			s.seedGenres,
			s.seedAuthors,
			s.seedBooks,
			s.seedAudiobooks,
			s.seedForumGroups,
			s.seedChallenges,
			s.seedQuiz,
			s.seedMarquee,
		}
		for _, step := range steps {
			if err := step(fx, &res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Int("genres", res.Genres).
		Int("authors", res.Authors).
		Int("books", res.Books).
		Int("audiobooks", res.Audiobooks).
		Int("questions", res.Questions).
		Msg("seed applied")
	return res, nil
}

type seeder struct {
	tx      *gorm.DB
	genres  map[string]int64
	authors map[string]int64
}

func upsertBySlug(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}
}

func (s *seeder) seedGenres(fx *Fixtures, res *Result) error {
	for _, f := range fx.Genres {
		g := models.Genre{Name: f.Name, Slug: f.Key()}
		if err := s.tx.Clauses(upsertBySlug("name")).Create(&g).Error; err != nil {
			return fmt.Errorf("seed genre %q: %w", f.Name, err)
		}
		s.genres[g.Slug] = g.ID
		res.Genres++
	}
	return nil
}

func (s *seeder) seedAuthors(fx *Fixtures, res *Result) error {
	for _, f := range fx.Authors {
		a := models.Author{Name: f.Name, Bio: f.Bio, Slug: f.Key()}
		if err := s.tx.Clauses(upsertBySlug("name", "bio")).Create(&a).Error; err != nil {
			return fmt.Errorf("seed author %q: %w", f.Name, err)
		}
		s.authors[a.Slug] = a.ID
		res.Authors++
	}
	return nil
}

func (s *seeder) seedBooks(fx *Fixtures, res *Result) error {
	for _, f := range fx.Books {
		b := models.Book{
			Title:           f.Title,
			Slug:            f.Key(),
			AuthorID:        s.authors[f.Author],
			Description:     f.Description,
			CoverImage:      f.CoverImage,
			MatchPercentage: f.MatchPercentage,
			IsNew:           f.IsNew,
		}
		if f.Genre != "" {
			id := s.genres[f.Genre]
			b.GenreID = &id
		}
		err := s.tx.Omit("Author", "Genre").
			Clauses(upsertBySlug("title", "author_id", "genre_id", "description", "cover_image", "match_percentage", "is_new")).
			Create(&b).Error
		if err != nil {
			return fmt.Errorf("seed book %q: %w", f.Title, err)
		}
		res.Books++
	}
	return nil
}

func (s *seeder) seedAudiobooks(fx *Fixtures, res *Result) error {
	for _, f := range fx.Audiobooks {
		a := models.Audiobook{
			Title:      f.Title,
			Slug:       f.Key(),
			AuthorID:   s.authors[f.Author],
			Duration:   f.ParsedDuration(),
			CoverImage: f.CoverImage,
			IsFeatured: f.IsFeatured,
			Order:      f.Order,
		}
		err := s.tx.Omit("Author").
			Clauses(upsertBySlug("title", "author_id", "duration", "cover_image", "is_featured", "display_order")).
			Create(&a).Error
		if err != nil {
			return fmt.Errorf("seed audiobook %q: %w", f.Title, err)
		}
		res.Audiobooks++
	}
	return nil
}

func (s *seeder) seedForumGroups(fx *Fixtures, res *Result) error {
	for _, f := range fx.ForumGroups {
		var g models.ForumGroup
		err := s.tx.Where(models.ForumGroup{Name: f.Name}).
			Assign(models.ForumGroup{
				Description:  f.Description,
				MembersCount: f.MembersCount,
				IconClass:    f.IconClass,
				ColorClass:   f.ColorClass,
				Order:        f.Order,
			}).
			FirstOrCreate(&g).Error
		if err != nil {
			return fmt.Errorf("seed forum group %q: %w", f.Name, err)
		}
		res.ForumGroups++
	}
	return nil
}

// seedChallenges keys challenges by year. Values are written with a map
// afterwards so false and zero are stored instead of the column defaults.
func (s *seeder) seedChallenges(fx *Fixtures, res *Result) error {
	for _, f := range fx.Challenges {
		var c models.ReadingChallenge
		if err := s.tx.Where(models.ReadingChallenge{Year: f.Year}).
			Attrs(models.ReadingChallenge{Goal: f.Goal}).
			FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("seed challenge %d: %w", f.Year, err)
		}
		err := s.tx.Model(&c).Updates(map[string]interface{}{
			"goal":      f.Goal,
			"current":   f.Current,
			"is_active": f.IsActive,
		}).Error
		if err != nil {
			return fmt.Errorf("update challenge %d: %w", f.Year, err)
		}
		res.Challenges++
	}
	return nil
}

// seedQuiz replaces the options of every seeded question.
func (s *seeder) seedQuiz(fx *Fixtures, res *Result) error {
	for _, f := range fx.Quiz {
		var q models.RecommendationQuiz
		err := s.tx.Where(models.RecommendationQuiz{Question: f.Question}).
			Assign(map[string]interface{}{"display_order": f.Order}).
			FirstOrCreate(&q).Error
		if err != nil {
			return fmt.Errorf("seed question %q: %w", f.Question, err)
		}

		if err := s.tx.Where("quiz_id = ?", q.ID).Delete(&models.QuizOption{}).Error; err != nil {
			return fmt.Errorf("clear options of %q: %w", f.Question, err)
		}
		for _, o := range f.Options {
			opt := models.QuizOption{
				QuizID:       q.ID,
				Text:         o.Text,
				GenreWeights: datatypes.NewJSONType(s.weights(o.Weights)),
			}
			if err := s.tx.Create(&opt).Error; err != nil {
				return fmt.Errorf("seed option %q: %w", o.Text, err)
			}
		}
		res.Questions++
	}
	return nil
}

func (s *seeder) seedMarquee(fx *Fixtures, res *Result) error {
	for _, f := range fx.Marquee {
		var m models.MarqueeMessage
		if err := s.tx.Where(models.MarqueeMessage{Text: f.Text}).FirstOrCreate(&m).Error; err != nil {
			return fmt.Errorf("seed marquee %q: %w", f.Text, err)
		}
		err := s.tx.Model(&m).Updates(map[string]interface{}{
			"is_active":     f.IsActive,
			"display_order": f.Order,
		}).Error
		if err != nil {
			return fmt.Errorf("update marquee %q: %w", f.Text, err)
		}
		res.Marquee++
	}
	return nil
}

// weights resolves genre slugs to ids.
func (s *seeder) weights(bySlug map[string]int) models.GenreWeights {
	w := make(models.GenreWeights, len(bySlug))
	for slug, weight := range bySlug {
		w[s.genres[slug]] = weight
	}
	return w
}
