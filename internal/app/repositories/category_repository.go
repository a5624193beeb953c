package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/db"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// PgCategoryRepository handles database operations for hazard categories
type PgCategoryRepository struct {
	db db.Querier
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(q db.Querier) *PgCategoryRepository {
	return &PgCategoryRepository{db: q}
}

// List retrieves all categories ordered by id
func (r *PgCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, hazard_level FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.HazardLevel); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

// GetByID retrieves a category by ID
func (r *PgCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(ctx, `SELECT id, name, hazard_level FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name, &category.HazardLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}
	return &category, nil
}

// Count returns the number of categories
func (r *PgCategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting categories: %w", err)
	}
	return count, nil
}

// Create inserts a category and sets its ID
func (r *PgCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, hazard_level) VALUES ($1, $2) RETURNING id`,
		category.Name, category.HazardLevel,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}
