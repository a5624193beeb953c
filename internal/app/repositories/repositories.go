package repositories

import (
	"context"

	"github.com/yigit/jobtracker/internal/app/models"
)

// UserRepository reads and writes users
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailExists ignores the user with excludeID (0 checks every row)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// JobRepository reads and writes jobs
type JobRepository interface {
	List(ctx context.Context) ([]*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id int64) error
	// ClearTeamLeader nulls team_leader_id on every job led by userID
	ClearTeamLeader(ctx context.Context, userID int64) error
}

// CategoryRepository reads and seeds hazard categories
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, category *models.Category) error
}

// DepartmentRepository reads and writes departments
type DepartmentRepository interface {
	List(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	// ClearChief nulls chief_id on every department headed by userID
	ClearChief(ctx context.Context, userID int64) error
}

// TxFn runs inside one unit of work. Returning an error discards every write.
type TxFn func(ctx context.Context, tx Store) error

// Store is the application state shared by every request. Each request
// opens its own unit of work with WithinTransaction.
type Store interface {
	Users() UserRepository
	Jobs() JobRepository
	Categories() CategoryRepository
	Departments() DepartmentRepository

	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	// Nested calls join the outer unit of work.
	WithinTransaction(ctx context.Context, fn TxFn) error
	Ping(ctx context.Context) error
}
