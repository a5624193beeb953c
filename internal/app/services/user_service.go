package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// UserService handles user operations
type UserService struct {
	store  repositories.Store
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(store repositories.Store, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// List returns every user ordered by id
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Get returns one user
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

// Create validates the payload and stores a user. The hashed_password field
// carries the plain password, which is bcrypt hashed before storage.
func (s *UserService) Create(ctx context.Context, p validation.Payload) (*models.User, error) {
	fields, err := validation.UserRules.Validate(p)
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	if err := applyUserFields(user, fields); err != nil {
		return nil, err
	}

	err = s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		exists, err := tx.Users().EmailExists(ctx, user.Email, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, s.wrap(err, "error creating user")
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User created")
	return user, nil
}

// Update applies the fields present in the payload
func (s *UserService) Update(ctx context.Context, id int64, p validation.Payload) (*models.User, error) {
	var user *models.User
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		current, err := tx.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := validation.UserRules.ValidatePartial(p)
		if err != nil {
			return err
		}
		if email, ok := fields.String("email"); ok {
			exists, err := tx.Users().EmailExists(ctx, email, id)
			if err != nil {
				return err
			}
			if exists {
				return apperrors.ErrEmailAlreadyExists
			}
		}

		if err := applyUserFields(current, fields); err != nil {
			return err
		}
		if err := tx.Users().Update(ctx, current); err != nil {
			return err
		}
		user = current
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "error updating user")
	}

	s.logger.Info().Int64("userID", id).Msg("User updated")
	return user, nil
}

// Delete removes a user and clears the jobs and departments referencing it
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		if _, err := tx.Users().GetByID(ctx, id); err != nil {
			return err
		}
		if err := tx.Jobs().ClearTeamLeader(ctx, id); err != nil {
			return err
		}
		if err := tx.Departments().ClearChief(ctx, id); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return s.wrap(err, "error deleting user")
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

func (s *UserService) wrap(err error, msg string) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func applyUserFields(user *models.User, fields validation.Fields) error {
	if v, ok := fields.String("surname"); ok {
		user.Surname = v
	}
	if v, ok := fields.String("name"); ok {
		user.Name = v
	}
	if v, ok := fields.Int("age"); ok {
		user.Age = int(v)
	}
	if v, ok := fields.String("position"); ok {
		user.Position = v
	}
	if v, ok := fields.String("speciality"); ok {
		user.Speciality = v
	}
	if v, ok := fields.String("address"); ok {
		user.Address = v
	}
	if v, ok := fields.String("email"); ok {
		user.Email = v
	}
	if v, ok := fields.String("city_from"); ok {
		user.CityFrom = v
	}
	if v, ok := fields.String("hashed_password"); ok {
		hash, err := auth.HashPassword(v)
		if err != nil {
			return err
		}
		user.HashedPassword = hash
	}
	return nil
}
