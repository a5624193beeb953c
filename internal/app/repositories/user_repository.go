package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/db"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/dberrors"
)

const userColumns = `id, surname, name, age, position, speciality, address, email, hashed_password, city_from`

// PgUserRepository handles database operations for users
type PgUserRepository struct {
	db db.Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(q db.Querier) *PgUserRepository {
	return &PgUserRepository{db: q}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Surname,
		&user.Name,
		&user.Age,
		&user.Position,
		&user.Speciality,
		&user.Address,
		&user.Email,
		&user.HashedPassword,
		&user.CityFrom,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users ordered by id
func (r *PgUserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByID retrieves a user by ID
func (r *PgUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// EmailExists checks whether another user already owns email
func (r *PgUserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
	if err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// Create inserts a user and sets its ID
func (r *PgUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (surname, name, age, position, speciality, address, email, hashed_password, city_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		user.Surname,
		user.Name,
		user.Age,
		user.Position,
		user.Speciality,
		user.Address,
		user.Email,
		user.HashedPassword,
		user.CityFrom,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.UsersEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Update writes every column of user
func (r *PgUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET surname = $1, name = $2, age = $3, position = $4, speciality = $5,
			address = $6, email = $7, hashed_password = $8, city_from = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		user.Surname,
		user.Name,
		user.Age,
		user.Position,
		user.Speciality,
		user.Address,
		user.Email,
		user.HashedPassword,
		user.CityFrom,
		user.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.UsersEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user
func (r *PgUserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
