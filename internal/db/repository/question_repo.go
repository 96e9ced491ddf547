package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gokatarajesh/trivia-catalog/internal/catalog"
)

const questionColumns = "id, question, answer, category, difficulty"

// QuestionRepository is the Postgres-backed question store. Every listing
// is ordered by id ascending so pagination is deterministic.
type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

var _ catalog.QuestionStore = (*QuestionRepository)(nil)

// ListAll returns the whole catalog ordered by id.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]catalog.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions ORDER BY id ASC", questionColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory returns questions whose category reference equals
// categoryID. Category existence is the caller's concern; an unknown id
// yields an empty result here.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]catalog.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions WHERE category = $1 ORDER BY id ASC", questionColumns)
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Search returns questions containing term as a case-insensitive
// substring of the question text. An empty term matches every row.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]catalog.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions WHERE question ILIKE '%%' || $1 || '%%' ORDER BY id ASC", questionColumns)
	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Insert appends a new question and returns it with the assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params catalog.InsertParams) (catalog.Question, error) {
	query := "INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id"
	q := catalog.Question{
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	err := r.db.QueryRowContext(ctx, query, params.Question, params.Answer, params.Category, params.Difficulty).Scan(&q.ID)
	if err != nil {
		return catalog.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question permanently. A missing id raises
// catalog.ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("question %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Count returns the size of the full catalog.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func scanQuestions(rows *sql.Rows) ([]catalog.Question, error) {
	var questions []catalog.Question
	for rows.Next() {
		var q catalog.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
