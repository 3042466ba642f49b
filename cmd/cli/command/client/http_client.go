package client

// http_client.go talks to the exlibris JSON API on behalf of exlibctl.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"exlibris/internal/microservices/http-api/dto"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// BookListParams mirrors the query string of GET /api/books.
type BookListParams struct {
	Search string
	Genre  int64
	Author int64
	Sort   string
	Page   int
}

func (p BookListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Genre > 0 {
		q.Set("genre", strconv.FormatInt(p.Genre, 10))
	}
	if p.Author > 0 {
		q.Set("author", strconv.FormatInt(p.Author, 10))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	return q
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) ListBooks(params BookListParams) (*dto.BookListResponse, error) {
	var out dto.BookListResponse
	if err := c.get("/api/books", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetBook(slug string) (*dto.BookDetailResponse, error) {
	var out dto.BookDetailResponse
	if err := c.get("/api/books/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) QuizQuestions() ([]dto.QuizQuestionResponse, error) {
	var out struct {
		Questions []dto.QuizQuestionResponse `json:"questions"`
	}
	if err := c.get("/api/quiz", nil, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *HTTPClient) SubmitQuiz(optionIDs []int64) ([]dto.RecommendedBook, error) {
	req := dto.QuizSubmitRequest{Answers: make([]dto.QuizAnswer, 0, len(optionIDs))}
	for _, id := range optionIDs {
		req.Answers = append(req.Answers, dto.QuizAnswer{OptionID: dto.OptionID{Value: id, Valid: true}})
	}
	var out dto.QuizResultResponse
	if err := c.post("/api/submit-quiz", req, &out); err != nil {
		return nil, err
	}
	return out.Books, nil
}

func (c *HTTPClient) UpdateStatus(bookID int64, status string) error {
	return c.post("/api/update-book-status", dto.UpdateStatusRequest{BookID: bookID, Status: status}, nil)
}

func (c *HTTPClient) RemoveBookmark(bookmarkID int64) error {
	return c.post("/api/remove-bookmark", dto.RemoveBookmarkRequest{BookmarkID: bookmarkID}, nil)
}

func (c *HTTPClient) Bookmarks(status string) (*dto.BookmarkListResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out dto.BookmarkListResponse
	if err := c.get("/api/bookmarks", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile() (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.get("/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ForumPosts(page int) (*dto.ForumPageResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out dto.ForumPageResponse
	if err := c.get("/api/forum", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ForumPost(id int64) (*dto.ForumPostResponse, error) {
	var out struct {
		Post dto.ForumPostResponse `json:"post"`
	}
	if err := c.get("/api/forum/posts/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) CreatePost(req dto.CreatePostDTO) (*dto.ForumPostResponse, error) {
	var out struct {
		Post dto.ForumPostResponse `json:"post"`
	}
	if err := c.post("/api/forum/posts", req, &out); err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) get(path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) post(path string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
