package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-catalog/internal/metrics"
	httperrors "github.com/gokatarajesh/trivia-catalog/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the catalog.
type HTTPHandlers struct {
	svc      *Service
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the catalog endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:      svc,
		validate: validator.New(),
		logger:   logger.With().Str("component", "catalog_http").Logger(),
	}
}

// intField accepts a JSON number or a numeric string, rejecting anything
// that does not parse as an integer. Clients historically send category
// and difficulty as quoted strings.
type intField int

func (v *intField) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	*v = intField(n)
	return nil
}

type createQuestionRequest struct {
	Question   string    `json:"question" validate:"required"`
	Answer     string    `json:"answer" validate:"required"`
	Category   *intField `json:"category" validate:"required"`
	Difficulty *intField `json:"difficulty" validate:"required"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type quizCategory struct {
	ID intField `json:"id"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions *[]int        `json:"previous_questions"`
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":    true,
		"categories": categoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
		"categories":      categoryMap(page.Categories),
	})
}

// SearchQuestions handles POST /questions/search. A missing or empty
// search term degenerates to "match everything"; zero matches is success.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions?page=N.
// A malformed id segment is a routing miss (404); an unknown category is
// unprocessable (422).
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.ListByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"category":        result.Category,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
	})
}

// CreateQuestion handles POST /questions. Any validation failure,
// including non-integer category or difficulty values, is 422.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	result, err := h.svc.CreateQuestion(r.Context(), InsertParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(*req.Category),
		Difficulty: int(*req.Difficulty),
	})
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"created":         result.ID,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"deleted":         result.ID,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
	})
}

// PlayQuiz handles POST /quizzes. Both quiz_category and
// previous_questions must be present (an empty history is fine); the
// response is 200 whether or not a question was left to serve.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	next, err := h.svc.NextQuizQuestion(r.Context(), int(req.QuizCategory.ID), *req.PreviousQuestions)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	if next == nil {
		metrics.QuizDrawsTotal.WithLabelValues("exhausted").Inc()
		h.respondJSON(w, map[string]any{"success": true})
		return
	}
	metrics.QuizDrawsTotal.WithLabelValues("served").Inc()
	h.respondJSON(w, map[string]any{
		"success":  true,
		"question": next,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}

// respondFailure translates typed service failures into exactly one
// envelope; anything untyped is an internal error.
func (h *HTTPHandlers) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w)
	case errors.Is(err, ErrBadRequest):
		httperrors.RespondBadRequest(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

// pageParam reads ?page=N, defaulting to 1 when absent or non-numeric.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// categoryMap renders categories as the id->label object the frontend
// consumes.
func categoryMap(categories []Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.Itoa(c.ID)] = c.Type
	}
	return m
}
