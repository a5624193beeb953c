package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/jobtracker/internal/app/auth"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// JobService handles job operations
type JobService struct {
	store  repositories.Store
	logger zerolog.Logger
}

// NewJobService creates a new job service instance
func NewJobService(store repositories.Store, logger zerolog.Logger) *JobService {
	return &JobService{
		store:  store,
		logger: logger,
	}
}

// List returns every job ordered by id
func (s *JobService) List(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.store.Jobs().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return jobs, nil
}

// Get returns one job
func (s *JobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.store.Jobs().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Editable returns a job actor may modify
func (s *JobService) Editable(ctx context.Context, actor *auth.Identity, id int64) (*models.Job, error) {
	job, err := s.store.Jobs().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.AuthorizeOwner(actor, job.OwnerID(), appauth.ErrNotJobOwner); err != nil {
		return nil, err
	}
	return job, nil
}

// Create validates every job field and stores a new job
func (s *JobService) Create(ctx context.Context, p validation.Payload) (*models.Job, error) {
	fields, err := validation.JobRules.Validate(p)
	if err != nil {
		return nil, err
	}

	job := &models.Job{}
	applyJobFields(job, fields)

	err = s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := checkCategory(ctx, tx, job.HazardCategoryID); err != nil {
			return err
		}
		return tx.Jobs().Create(ctx, job)
	})
	if err != nil {
		return nil, s.wrap(err, "error creating job")
	}

	s.logger.Info().Int64("jobID", job.ID).Msg("Job created")
	return job, nil
}

// Update changes a job. actor is nil for API calls, which are not ownership checked.
func (s *JobService) Update(ctx context.Context, actor *auth.Identity, id int64, p validation.Payload, mode UpdateMode) (*models.Job, error) {
	var job *models.Job
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		current, err := tx.Jobs().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actor != nil {
			if err := appauth.AuthorizeOwner(actor, current.OwnerID(), appauth.ErrNotJobOwner); err != nil {
				return err
			}
		}

		fields, err := mode.validate(validation.JobRules, p)
		if err != nil {
			return err
		}
		applyJobFields(current, fields)

		if fields.Has("hazard_category_id") {
			if err := checkCategory(ctx, tx, current.HazardCategoryID); err != nil {
				return err
			}
		}
		if err := tx.Jobs().Update(ctx, current); err != nil {
			return err
		}
		job = current
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "error updating job")
	}

	s.logger.Info().Int64("jobID", id).Msg("Job updated")
	return job, nil
}

// Delete removes a job. actor is nil for API calls.
func (s *JobService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		job, err := tx.Jobs().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if actor != nil {
			if err := appauth.AuthorizeOwner(actor, job.OwnerID(), appauth.ErrNotJobOwner); err != nil {
				return err
			}
		}
		return tx.Jobs().Delete(ctx, id)
	})
	if err != nil {
		return s.wrap(err, "error deleting job")
	}

	s.logger.Info().Int64("jobID", id).Msg("Job deleted")
	return nil
}

// wrap keeps domain errors as they are and annotates unexpected ones
func (s *JobService) wrap(err error, msg string) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func applyJobFields(job *models.Job, fields validation.Fields) {
	if v, ok := fields.String("job_title"); ok {
		job.JobTitle = v
	}
	if v, ok := fields.Int("team_leader_id"); ok {
		job.TeamLeaderID = models.Int64Ptr(v)
	}
	if v, ok := fields.Int("work_size"); ok {
		job.WorkSize = int(v)
	}
	if v, ok := fields.String("collaborators"); ok {
		job.Collaborators = v
	}
	if v, ok := fields.Bool("is_finished"); ok {
		job.IsFinished = v
	}
	if v, ok := fields.Int("hazard_category_id"); ok {
		job.HazardCategoryID = models.Int64Ptr(v)
	}
}

// checkCategory reports a missing hazard category as a field error
func checkCategory(ctx context.Context, tx repositories.Store, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := tx.Categories().GetByID(ctx, *id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return fieldError("hazard_category_id", fmt.Sprintf("Hazard category %d does not exist", *id))
	}
	return err
}

// isDomainError reports errors that handlers translate into status codes
func isDomainError(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrPermissionDenied,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrSessionInvalid,
		apperrors.ErrSessionRevoked,
		apperrors.ErrGeocodingFailed,
		apperrors.ErrMapFetchFailed,
		apperrors.ErrFileDelete,
	)
}
