package dto

import (
	"encoding/json"
	"testing"
	"time"

	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBookSort(t *testing.T) {
	for _, key := range []string{"title", "-title", "created_at", "-created_at", "match_percentage", "-match_percentage"} {
		assert.Equal(t, key, NormalizeBookSort(key))
	}
	assert.Equal(t, DefaultBookSort, NormalizeBookSort(""))
	assert.Equal(t, DefaultBookSort, NormalizeBookSort("price"))
	assert.Equal(t, DefaultBookSort, NormalizeBookSort("title; DROP TABLE books"))
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
	assert.Equal(t, 7, ParsePage(" 7 "))
}

func TestBookQueryParamsFilter(t *testing.T) {
	f := BookQueryParams{Search: "  dune ", Genre: "3", Author: "x", Sort: "bogus", Page: "2"}.Filter()

	assert.Equal(t, "dune", f.Search)
	require.NotNil(t, f.GenreID)
	assert.Equal(t, int64(3), *f.GenreID)
	assert.Nil(t, f.AuthorID, "non-numeric author is ignored")
	assert.Equal(t, DefaultBookSort, f.Sort)
	assert.Equal(t, 2, f.Page)

	f = BookQueryParams{Genre: "-1", Author: "0"}.Filter()
	assert.Nil(t, f.GenreID)
	assert.Nil(t, f.AuthorID)
	assert.Equal(t, 1, f.Page)
}

func TestOptionIDUnmarshal(t *testing.T) {
	var req QuizSubmitRequest
	body := `{"answers":[{"option_id":4},{"option_id":"7"},{"option_id":"abc"},{"option_id":null},{"option_id":1.5},{}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Len(t, req.Answers, 6)
	assert.Equal(t, []int64{4, 7}, req.OptionIDs())
}

func TestOptionIDMarshal(t *testing.T) {
	b, err := json.Marshal(QuizAnswer{OptionID: OptionID{Value: 9, Valid: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"option_id":9}`, string(b))

	b, err = json.Marshal(QuizAnswer{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"option_id":null}`, string(b))
}

func TestBookFromModel(t *testing.T) {
	genreID := int64(2)
	b := models.Book{
		ID:              1,
		Title:           "Dune",
		Slug:            "dune",
		CoverImage:      "covers/dune.jpg",
		MatchPercentage: 80,
		GenreID:         &genreID,
		Author:          models.Author{ID: 5, Name: "Frank Herbert", Slug: "frank-herbert"},
		Genre:           &models.Genre{ID: 2, Name: "Sci-Fi", Slug: "sci-fi"},
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := BookFromModel(b, media.NewResolver("/media/"))
	assert.Equal(t, "/media/covers/dune.jpg", resp.CoverURL)
	assert.Equal(t, "Frank Herbert", resp.Author.Name)
	require.NotNil(t, resp.Genre)
	assert.Equal(t, "sci-fi", resp.Genre.Slug)

	list := BooksFromModels([]models.Book{b}, media.NewResolver(""), map[int64]string{1: models.StatusReading})
	assert.Equal(t, models.StatusReading, list[0].UserStatus)
}

func TestRecommendedBookFromModel(t *testing.T) {
	b := models.Book{ID: 3, Title: "Emma", Slug: "emma", CoverImage: "c.jpg", Author: models.Author{Name: "Jane Austen"}}
	rb := RecommendedBookFromModel(b, 50, media.NewResolver("/media/"))

	assert.Equal(t, RecommendedBook{ID: 3, Title: "Emma", Author: "Jane Austen", CoverURL: "/media/c.jpg", MatchPercentage: 50, Slug: "emma"}, rb)
}

func TestChallengeFromModel(t *testing.T) {
	assert.Nil(t, ChallengeFromModel(nil))

	c := ChallengeFromModel(&models.ReadingChallenge{ID: 1, Year: 2025, Goal: 40, Current: 10})
	require.NotNil(t, c)
	assert.Equal(t, 25, c.ProgressPercentage)
}

func TestCreatePostDTOToModel(t *testing.T) {
	groupID := int64(4)
	p := CreatePostDTO{Title: "  Hello ", Content: "body", Category: models.CategoryQuestion, ForumGroupID: &groupID}.ToModel("user-1")

	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, &groupID, p.ForumGroupID)
	assert.Zero(t, p.Views)
}

func TestStatusMap(t *testing.T) {
	m := StatusMap([]models.UserBookStatus{{BookID: 1, Status: "read"}, {BookID: 2, Status: "planned"}})
	assert.Equal(t, map[int64]string{1: "read", 2: "planned"}, m)
}

func TestBookmarkQueryFilter(t *testing.T) {
	assert.Equal(t, models.StatusAll, BookmarkQuery{}.Filter())
	assert.Equal(t, models.StatusAll, BookmarkQuery{Status: "  "}.Filter())
	assert.Equal(t, models.StatusRead, BookmarkQuery{Status: "read"}.Filter())
}
