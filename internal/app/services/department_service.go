package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/jobtracker/internal/app/auth"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	store  repositories.Store
	logger zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(store repositories.Store, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		store:  store,
		logger: logger,
	}
}

// List returns every department ordered by id
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.store.Departments().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

// Get retrieves a department by ID
func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	return s.store.Departments().GetByID(ctx, id)
}

// Editable returns a department actor may modify
func (s *DepartmentService) Editable(ctx context.Context, actor *auth.Identity, id int64) (*models.Department, error) {
	department, err := s.store.Departments().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.AuthorizeOwner(actor, department.OwnerID(), appauth.ErrNotDepartmentChief); err != nil {
		return nil, err
	}
	return department, nil
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, p validation.Payload) (*models.Department, error) {
	fields, err := validation.DepartmentRules.Validate(p)
	if err != nil {
		return nil, err
	}

	department := &models.Department{}
	applyDepartmentFields(department, fields)

	err = s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		return tx.Departments().Create(ctx, department)
	})
	if err != nil {
		return nil, s.wrap(err, "error creating department")
	}

	s.logger.Info().Int64("departmentID", department.ID).Msg("Department created")
	return department, nil
}

// Update changes a department; only its chief or the superuser may do so
func (s *DepartmentService) Update(ctx context.Context, actor *auth.Identity, id int64, p validation.Payload, mode UpdateMode) (*models.Department, error) {
	var department *models.Department
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		current, err := tx.Departments().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := appauth.AuthorizeOwner(actor, current.OwnerID(), appauth.ErrNotDepartmentChief); err != nil {
			return err
		}

		fields, err := mode.validate(validation.DepartmentRules, p)
		if err != nil {
			return err
		}
		applyDepartmentFields(current, fields)

		if err := tx.Departments().Update(ctx, current); err != nil {
			return err
		}
		department = current
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "error updating department")
	}

	s.logger.Info().Int64("departmentID", id).Msg("Department updated")
	return department, nil
}

// Delete removes a department; only its chief or the superuser may do so
func (s *DepartmentService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		department, err := tx.Departments().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := appauth.AuthorizeOwner(actor, department.OwnerID(), appauth.ErrNotDepartmentChief); err != nil {
			return err
		}
		return tx.Departments().Delete(ctx, id)
	})
	if err != nil {
		return s.wrap(err, "error deleting department")
	}

	s.logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}

func (s *DepartmentService) wrap(err error, msg string) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func applyDepartmentFields(department *models.Department, fields validation.Fields) {
	if v, ok := fields.String("title"); ok {
		department.Title = v
	}
	if v, ok := fields.Int("chief_id"); ok {
		department.ChiefID = models.Int64Ptr(v)
	}
	if v, ok := fields.String("members"); ok {
		department.Members = v
	}
	if v, ok := fields.String("email"); ok {
		department.Email = v
	}
}
