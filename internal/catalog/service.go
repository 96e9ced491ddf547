package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// QuestionStore is the persistence contract for questions. Implementations
// return sequences ordered by id ascending and raise ErrNotFound for
// missing rows.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, params InsertParams) (Question, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CategoryStore is the persistence contract for the static category set.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
}

// Service composes the store, pagination and quiz selection into one
// answer per request. It holds no session state between calls.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	logger     zerolog.Logger
}

func NewService(questions QuestionStore, categories CategoryStore, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "catalog_service").Logger(),
	}
}

// QuestionPage is the primary listing payload: one page plus the size of
// the unfiltered set and the full category map.
type QuestionPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     []Category
}

// SearchResult carries a page of matches plus the matched-set size
// (not the global count).
type SearchResult struct {
	Questions      []Question
	TotalQuestions int
}

// CategoryQuestions is the category-filtered listing payload.
type CategoryQuestions struct {
	Category       string
	Questions      []Question
	TotalQuestions int
}

// MutationResult is returned by create and delete: the affected id plus a
// refreshed first page and the new total.
type MutationResult struct {
	ID             int
	Questions      []Question
	TotalQuestions int
}

// ListQuestions returns one page of the full catalog. A page past the end
// of data is a not-found condition here (and only here; search and
// category listings report empty pages as zero results).
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	current := Paginate(all, page)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("page %d: %w", page, ErrNotFound)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}

	return QuestionPage{
		Questions:      current,
		TotalQuestions: len(all),
		Categories:     categories,
	}, nil
}

// SearchQuestions returns one page of questions whose text contains term
// as a case-insensitive substring. An empty term matches everything, and
// an empty result set is a valid answer.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	matched, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}
	return SearchResult{
		Questions:      Paginate(matched, page),
		TotalQuestions: len(matched),
	}, nil
}

// ListByCategory returns one page of a category's questions. An unknown
// category id is surfaced as ErrUnprocessable, matching the service's
// long-standing status mapping; an empty category is a valid zero-result
// answer.
func (s *Service) ListByCategory(ctx context.Context, categoryID, page int) (CategoryQuestions, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		if isNotFound(err) {
			return CategoryQuestions{}, fmt.Errorf("category %d: %w", categoryID, ErrUnprocessable)
		}
		return CategoryQuestions{}, fmt.Errorf("resolve category: %w", err)
	}

	matched, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list by category: %w", err)
	}

	return CategoryQuestions{
		Category:       category.Type,
		Questions:      Paginate(matched, page),
		TotalQuestions: len(matched),
	}, nil
}

// ListCategories returns the full category set ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateQuestion validates and inserts a new question, then refreshes the
// first page. Missing text fields are ErrUnprocessable; the category and
// difficulty arrive already integer-coerced by the transport layer.
func (s *Service) CreateQuestion(ctx context.Context, params InsertParams) (MutationResult, error) {
	if strings.TrimSpace(params.Question) == "" || strings.TrimSpace(params.Answer) == "" {
		return MutationResult{}, fmt.Errorf("question and answer are required: %w", ErrUnprocessable)
	}

	created, err := s.questions.Insert(ctx, params)
	if err != nil {
		return MutationResult{}, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")

	return s.mutationResult(ctx, created.ID)
}

// DeleteQuestion removes a question permanently and refreshes the first
// page. An unknown id maps to ErrUnprocessable rather than not-found;
// that looseness is part of the public contract.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (MutationResult, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return MutationResult{}, fmt.Errorf("question %d: %w", id, ErrUnprocessable)
		}
		return MutationResult{}, fmt.Errorf("delete question: %w", err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")

	return s.mutationResult(ctx, id)
}

// NextQuizQuestion draws one random question outside the caller's history.
// categoryID == AllCategories draws from the whole catalog. Exhaustion is
// not an error: the returned pointer is nil when nothing is left. Unknown
// category ids simply have an empty candidate set.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error) {
	var (
		candidates []Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questions.ListAll(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}

	next, ok := SelectNext(candidates, previous)
	if !ok {
		s.logger.Debug().Int("category", categoryID).Int("previous", len(previous)).Msg("quiz exhausted")
		return nil, nil
	}
	return &next, nil
}

func (s *Service) mutationResult(ctx context.Context, id int) (MutationResult, error) {
	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("refresh listing: %w", err)
	}
	total, err := s.questions.Count(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("count questions: %w", err)
	}
	return MutationResult{
		ID:             id,
		Questions:      Paginate(all, 1),
		TotalQuestions: total,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
