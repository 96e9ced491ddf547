package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-catalog/internal/catalog"
)

// CategoryRepository reads the static category reference data.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ catalog.CategoryStore = (*CategoryRepository)(nil)

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Get resolves a single category, raising catalog.ErrNotFound on a miss
// so callers can distinguish "unknown category" from "category with no
// questions".
func (r *CategoryRepository) Get(ctx context.Context, id int) (catalog.Category, error) {
	var c catalog.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Category{}, fmt.Errorf("category %d: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return catalog.Category{}, fmt.Errorf("query category: %w", err)
	}
	return c, nil
}
