package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/jobtracker/internal/db"
)

// PostgresStore is the Store backed by a pgx pool
type PostgresStore struct {
	db   *db.PostgresDB
	q    db.Querier
	inTx bool
}

// NewPostgresStore creates a Store on top of the connection pool
func NewPostgresStore(database *db.PostgresDB) *PostgresStore {
	return &PostgresStore{
		db: database,
		q:  database.Pool,
	}
}

func (s *PostgresStore) Users() UserRepository {
	return NewUserRepository(s.q)
}

func (s *PostgresStore) Jobs() JobRepository {
	return NewJobRepository(s.q)
}

func (s *PostgresStore) Categories() CategoryRepository {
	return NewCategoryRepository(s.q)
}

func (s *PostgresStore) Departments() DepartmentRepository {
	return NewDepartmentRepository(s.q)
}

// WithinTransaction runs fn against repositories bound to a single pgx.Tx
func (s *PostgresStore) WithinTransaction(ctx context.Context, fn TxFn) error {
	if s.inTx {
		return fn(ctx, s)
	}
	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &PostgresStore{db: s.db, q: tx, inTx: true})
	})
}

// Ping checks the database connection
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
