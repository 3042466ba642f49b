package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"exlibris/internal/microservices/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooksSendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "dune", r.URL.Query().Get("search"))
		assert.Equal(t, "3", r.URL.Query().Get("genre"))
		assert.Equal(t, "title", r.URL.Query().Get("sort"))
		assert.Empty(t, r.URL.Query().Get("author"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"books":[{"id":1,"title":"Dune","slug":"dune"}],"pagination":{"page":1,"total":1},"sort":"title"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL + "/")
	out, err := c.ListBooks(BookListParams{Search: "dune", Genre: 3, Sort: "title"})
	require.NoError(t, err)
	require.Len(t, out.Books, 1)
	assert.Equal(t, "Dune", out.Books[0].Title)
	assert.Equal(t, int64(1), out.Pagination.Total)
}

func TestSubmitQuizSendsBearerAndAnswers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string][]map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []map[string]int64{{"option_id": 4}, {"option_id": 9}}, body["answers"])

		w.Write([]byte(`{"success":true,"books":[{"id":2,"title":"Emma","match_percentage":100}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")
	books, err := c.SubmitQuiz([]int64{4, 9})
	require.NoError(t, err)
	assert.Equal(t, []dto.RecommendedBook{{ID: 2, Title: "Emma", MatchPercentage: 100}}, books)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"bookmark not found"}`))
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL).RemoveBookmark(5)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "bookmark not found", apiErr.Message)
}

func TestNonJSONErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).ForumPosts(1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
