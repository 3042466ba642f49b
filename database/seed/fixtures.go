package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"exlibris/internal/microservices/http-api/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

//go:embed fixtures.json
var defaultFixtures []byte

// Fixtures is the catalog content loaded by `exlibctl seed`. Rows refer to
// each other by slug so the file stays independent of database ids.
type Fixtures struct {
	Genres      []GenreFixture      `json:"genres"`
	Authors     []AuthorFixture     `json:"authors"`
	Books       []BookFixture       `json:"books"`
	Audiobooks  []AudiobookFixture  `json:"audiobooks"`
	ForumGroups []ForumGroupFixture `json:"forum_groups"`
	Challenges  []ChallengeFixture  `json:"challenges"`
	Quiz        []QuestionFixture   `json:"quiz"`
	Marquee     []MarqueeFixture    `json:"marquee"`
}

type GenreFixture struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (f GenreFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Slug, validation.Length(0, 120), is.LowerCase),
	)
}

// Key is the slug the genre is stored and referenced under.
func (f GenreFixture) Key() string {
	return slugOr(f.Slug, f.Name, "genre")
}

type AuthorFixture struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
	Slug string `json:"slug"`
}

func (f AuthorFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Slug, validation.Length(0, 220), is.LowerCase),
	)
}

func (f AuthorFixture) Key() string {
	return slugOr(f.Slug, f.Name, "author")
}

type BookFixture struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	Description     string `json:"description"`
	CoverImage      string `json:"cover_image"`
	MatchPercentage int    `json:"match_percentage"`
	IsNew           bool   `json:"is_new"`
}

func (f BookFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Slug, validation.Length(0, 220), is.LowerCase),
		validation.Field(&f.Author, validation.Required),
		validation.Field(&f.CoverImage, validation.Length(0, 255)),
		validation.Field(&f.MatchPercentage, validation.Min(0), validation.Max(100)),
	)
}

func (f BookFixture) Key() string {
	return slugOr(f.Slug, f.Title, "book")
}

type AudiobookFixture struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Author     string `json:"author"`
	Duration   string `json:"duration"`
	CoverImage string `json:"cover_image"`
	IsFeatured bool   `json:"is_featured"`
	Order      int    `json:"order"`
}

func (f AudiobookFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Slug, validation.Length(0, 220), is.LowerCase),
		validation.Field(&f.Author, validation.Required),
		validation.Field(&f.Duration, validation.Required, validation.By(isDuration)),
		validation.Field(&f.Order, validation.Min(0)),
	)
}

func (f AudiobookFixture) Key() string {
	return slugOr(f.Slug, f.Title, "audiobook")
}

// ParsedDuration is only meaningful after Validate succeeded.
func (f AudiobookFixture) ParsedDuration() time.Duration {
	d, _ := time.ParseDuration(f.Duration)
	return d
}

type ForumGroupFixture struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	MembersCount int    `json:"members_count"`
	IconClass    string `json:"icon_class"`
	ColorClass   string `json:"color_class"`
	Order        int    `json:"order"`
}

func (f ForumGroupFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.MembersCount, validation.Min(0)),
		validation.Field(&f.IconClass, validation.Length(0, 50)),
		validation.Field(&f.ColorClass, validation.Length(0, 50)),
	)
}

type ChallengeFixture struct {
	Year     int  `json:"year"`
	Goal     int  `json:"goal"`
	Current  int  `json:"current"`
	IsActive bool `json:"is_active"`
}

func (f ChallengeFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Year, validation.Required, validation.Min(2000), validation.Max(2100)),
		validation.Field(&f.Goal, validation.Required, validation.Min(1)),
		validation.Field(&f.Current, validation.Min(0)),
	)
}

type QuestionFixture struct {
	Question string          `json:"question"`
	Order    int             `json:"order"`
	Options  []OptionFixture `json:"options"`
}

func (f QuestionFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Options, validation.Required),
	)
}

// OptionFixture weighs genres by slug.
type OptionFixture struct {
	Text    string         `json:"text"`
	Weights map[string]int `json:"weights"`
}

func (f OptionFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Weights, validation.Required, validation.Each(validation.Min(1))),
	)
}

type MarqueeFixture struct {
	Text     string `json:"text"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

func (f MarqueeFixture) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, validation.Required, validation.Length(1, 200)),
	)
}

// Validate checks every row and that every slug reference resolves inside
// the file.
func (fx Fixtures) Validate() error {
	genres := make(map[string]bool, len(fx.Genres))
	for _, g := range fx.Genres {
		genres[g.Key()] = true
	}
	authors := make(map[string]bool, len(fx.Authors))
	for _, a := range fx.Authors {
		authors[a.Key()] = true
	}

	if err := validation.ValidateStruct(&fx,
		validation.Field(&fx.Genres),
		validation.Field(&fx.Authors),
		validation.Field(&fx.Books),
		validation.Field(&fx.Audiobooks),
		validation.Field(&fx.ForumGroups),
		validation.Field(&fx.Challenges),
		validation.Field(&fx.Quiz),
		validation.Field(&fx.Marquee),
	); err != nil {
		return err
	}

	for _, b := range fx.Books {
		if !authors[b.Author] {
			return fmt.Errorf("book %q: unknown author %q", b.Title, b.Author)
		}
		if b.Genre != "" && !genres[b.Genre] {
			return fmt.Errorf("book %q: unknown genre %q", b.Title, b.Genre)
		}
	}
	for _, a := range fx.Audiobooks {
		if !authors[a.Author] {
			return fmt.Errorf("audiobook %q: unknown author %q", a.Title, a.Author)
		}
	}
	for _, q := range fx.Quiz {
		for _, o := range q.Options {
			for genre := range o.Weights {
				if !genres[genre] {
					return fmt.Errorf("quiz option %q: unknown genre %q", o.Text, genre)
				}
			}
		}
	}
	return nil
}

// Load reads fixtures from path, or the built-in set when path is empty,
// and validates them.
func Load(path string) (*Fixtures, error) {
	raw := defaultFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		raw = b
	}

	var fx Fixtures
	if err := json.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return &fx, nil
}

func isDuration(value interface{}) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_duration", "must be a duration such as 1h30m")
	}
	if d <= 0 {
		return validation.NewError("validation_duration", "must be positive")
	}
	return nil
}

func slugOr(explicit, source, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return models.MakeSlug(source, fallback)
}
