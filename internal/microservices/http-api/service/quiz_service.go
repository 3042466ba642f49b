package service

import (
	"context"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
	"exlibris/pkg/metrics"
)

const recommendationLimit = 4

// Recommendation is a sampled book and how well it matches the answers.
type Recommendation struct {
	Book            models.Book
	MatchPercentage int
}

type QuizService interface {
	Questions(ctx context.Context) ([]models.RecommendationQuiz, error)
	Recommend(ctx context.Context, identity shared.Identity, optionIDs []int64) ([]Recommendation, error)
}

type quizService struct {
	repo  repository.QuizRepository
	books repository.BookRepository
}

func NewQuizService(repo repository.QuizRepository, books repository.BookRepository) QuizService {
	return &quizService{repo: repo, books: books}
}

func (s *quizService) Questions(ctx context.Context) ([]models.RecommendationQuiz, error) {
	return s.repo.Questions(ctx)
}

// Recommend sums the genre weights of the chosen options and samples up to
// four books from the genres with a positive total. When nothing resolves
// to a genre the whole catalog is sampled and the editorial score is used
// as the match.
func (s *quizService) Recommend(ctx context.Context, identity shared.Identity, optionIDs []int64) ([]Recommendation, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthenticated
	}

	options, err := s.repo.OptionsByIDs(ctx, optionIDs)
	if err != nil {
		return nil, err
	}
	weights := AggregateWeights(options, optionIDs)
	candidates := weights.Candidates()

	books, err := s.books.Sample(ctx, candidates, recommendationLimit)
	if err != nil {
		return nil, err
	}
	metrics.RecordQuizSubmission(len(candidates) == 0)

	out := make([]Recommendation, 0, len(books))
	for _, b := range books {
		out = append(out, Recommendation{Book: b, MatchPercentage: MatchPercentage(weights, b)})
	}
	return out, nil
}

// AggregateWeights sums the weights of the resolved options once per
// answer, so an option chosen twice counts twice. Answers that did not
// resolve contribute nothing.
func AggregateWeights(options []models.QuizOption, answers []int64) models.GenreWeights {
	byID := make(map[int64]models.QuizOption, len(options))
	for _, o := range options {
		byID[o.ID] = o
	}

	total := models.GenreWeights{}
	for _, id := range answers {
		if o, ok := byID[id]; ok {
			total.Add(o.Weights())
		}
	}
	return total
}

// MatchPercentage is the weight of the book's genre relative to the
// strongest genre. Without any positive weight it is the stored score.
func MatchPercentage(weights models.GenreWeights, b models.Book) int {
	maxWeight := weights.Max()
	if maxWeight <= 0 {
		return models.ClampMatchPercentage(b.MatchPercentage)
	}
	if b.GenreID == nil {
		return 0
	}
	return models.ClampMatchPercentage(weights[*b.GenreID] * 100 / maxWeight)
}
