// Package memory provides an in-memory transactional Store. A unit of work
// runs on a private copy of the state and replaces the committed state only
// when it succeeds.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
)

type state struct {
	users       map[int64]models.User
	jobs        map[int64]models.Job
	categories  map[int64]models.Category
	departments map[int64]models.Department

	lastUserID       int64
	lastJobID        int64
	lastCategoryID   int64
	lastDepartmentID int64
}

func newState() *state {
	return &state{
		users:       map[int64]models.User{},
		jobs:        map[int64]models.Job{},
		categories:  map[int64]models.Category{},
		departments: map[int64]models.Department{},
	}
}

func (s *state) clone() *state {
	c := &state{
		users:            make(map[int64]models.User, len(s.users)),
		jobs:             make(map[int64]models.Job, len(s.jobs)),
		categories:       make(map[int64]models.Category, len(s.categories)),
		departments:      make(map[int64]models.Department, len(s.departments)),
		lastUserID:       s.lastUserID,
		lastJobID:        s.lastJobID,
		lastCategoryID:   s.lastCategoryID,
		lastDepartmentID: s.lastDepartmentID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = cloneJob(v)
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.departments {
		c.departments[k] = cloneDepartment(v)
	}
	return c
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneJob(j models.Job) models.Job {
	j.TeamLeaderID = cloneInt64(j.TeamLeaderID)
	j.HazardCategoryID = cloneInt64(j.HazardCategoryID)
	return j
}

func cloneDepartment(d models.Department) models.Department {
	d.ChiefID = cloneInt64(d.ChiefID)
	return d
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// access runs repository operations against some view of the state
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

// Store is the in-memory repositories.Store
type Store struct {
	mu    sync.RWMutex
	state *state
}

var _ repositories.Store = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) read(fn func(*state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// write applies fn as its own single-operation unit of work
func (s *Store) write(fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) Users() repositories.UserRepository { return &userRepo{a: s} }

func (s *Store) Jobs() repositories.JobRepository { return &jobRepo{a: s} }

func (s *Store) Categories() repositories.CategoryRepository { return &categoryRepo{a: s} }

func (s *Store) Departments() repositories.DepartmentRepository { return &departmentRepo{a: s} }

// WithinTransaction holds the store lock for the duration of fn. fn must only
// use the tx Store it is given.
func (s *Store) WithinTransaction(ctx context.Context, fn repositories.TxFn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txStore{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error {
	return nil
}

// txStore is the Store handed to a unit of work
type txStore struct {
	state *state
}

func (t *txStore) read(fn func(*state) error) error  { return fn(t.state) }
func (t *txStore) write(fn func(*state) error) error { return fn(t.state) }

func (t *txStore) Users() repositories.UserRepository { return &userRepo{a: t} }

func (t *txStore) Jobs() repositories.JobRepository { return &jobRepo{a: t} }

func (t *txStore) Categories() repositories.CategoryRepository { return &categoryRepo{a: t} }

func (t *txStore) Departments() repositories.DepartmentRepository { return &departmentRepo{a: t} }

func (t *txStore) WithinTransaction(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx, t)
}

func (t *txStore) Ping(context.Context) error {
	return nil
}
