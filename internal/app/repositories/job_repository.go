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

const jobColumns = `id, job_title, team_leader_id, work_size, collaborators, is_finished, hazard_category_id`

// PgJobRepository handles database operations for jobs
type PgJobRepository struct {
	db db.Querier
}

// NewJobRepository creates a new job repository
func NewJobRepository(q db.Querier) *PgJobRepository {
	return &PgJobRepository{db: q}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.JobTitle,
		&job.TeamLeaderID,
		&job.WorkSize,
		&job.Collaborators,
		&job.IsFinished,
		&job.HazardCategoryID,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves all jobs ordered by id
func (r *PgJobRepository) List(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// GetByID retrieves a job by ID
func (r *PgJobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// Create inserts a job and sets its ID
func (r *PgJobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (job_title, team_leader_id, work_size, collaborators, is_finished, hazard_category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		job.JobTitle,
		job.TeamLeaderID,
		job.WorkSize,
		job.Collaborators,
		job.IsFinished,
		job.HazardCategoryID,
	).Scan(&job.ID)
	if err != nil {
		if dberrors.IsForeignKeyError(err, dberrors.JobsHazardCategoryFK) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// Update writes every column of job
func (r *PgJobRepository) Update(ctx context.Context, job *models.Job) error {
	query := `
		UPDATE jobs
		SET job_title = $1, team_leader_id = $2, work_size = $3, collaborators = $4,
			is_finished = $5, hazard_category_id = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		job.JobTitle,
		job.TeamLeaderID,
		job.WorkSize,
		job.Collaborators,
		job.IsFinished,
		job.HazardCategoryID,
		job.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyError(err, dberrors.JobsHazardCategoryFK) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("error updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete removes a job
func (r *PgJobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// ClearTeamLeader detaches userID from the jobs it leads
func (r *PgJobRepository) ClearTeamLeader(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, `UPDATE jobs SET team_leader_id = NULL WHERE team_leader_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing team leader: %w", err)
	}
	return nil
}
