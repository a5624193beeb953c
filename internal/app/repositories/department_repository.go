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

// PgDepartmentRepository handles database operations for departments
type PgDepartmentRepository struct {
	db db.Querier
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(q db.Querier) *PgDepartmentRepository {
	return &PgDepartmentRepository{db: q}
}

// Create creates a new department
func (r *PgDepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (title, chief_id, members, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		department.Title,
		department.ChiefID,
		department.Members,
		department.Email,
	).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *PgDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, title, chief_id, members, email
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Title,
		&department.ChiefID,
		&department.Members,
		&department.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// List retrieves all departments
func (r *PgDepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, title, chief_id, members, email
		FROM departments
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Title,
			&department.ChiefID,
			&department.Members,
			&department.Email,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update writes every column of department
func (r *PgDepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET title = $1, chief_id = $2, members = $3, email = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		department.Title,
		department.ChiefID,
		department.Members,
		department.Email,
		department.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department
func (r *PgDepartmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// ClearChief detaches userID from the departments it heads
func (r *PgDepartmentRepository) ClearChief(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, `UPDATE departments SET chief_id = NULL WHERE chief_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing department chief: %w", err)
	}
	return nil
}
