package memory

import (
	"context"

	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

type userRepo struct {
	a access
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.a.read(func(st *state) error {
		users = make([]*models.User, 0, len(st.users))
		for _, id := range sortedKeys(st.users) {
			u := st.users[id]
			users = append(users, &u)
		}
		return nil
	})
	return users, err
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	var user *models.User
	err := r.a.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return apperrors.ErrUserNotFound
		}
		user = &u
		return nil
	})
	return user, err
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.a.read(func(st *state) error {
		for _, id := range sortedKeys(st.users) {
			if u := st.users[id]; u.Email == email {
				user = &u
				return nil
			}
		}
		return apperrors.ErrUserNotFound
	})
	return user, err
}

func (r *userRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.a.read(func(st *state) error {
		exists = emailTaken(st, email, excludeID)
		return nil
	})
	return exists, err
}

func emailTaken(st *state, email string, excludeID int64) bool {
	for id, u := range st.users {
		if id != excludeID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	return r.a.write(func(st *state) error {
		if emailTaken(st, user.Email, 0) {
			return apperrors.ErrEmailAlreadyExists
		}
		st.lastUserID++
		user.ID = st.lastUserID
		st.users[user.ID] = *user
		return nil
	})
}

func (r *userRepo) Update(_ context.Context, user *models.User) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return apperrors.ErrUserNotFound
		}
		if emailTaken(st, user.Email, user.ID) {
			return apperrors.ErrEmailAlreadyExists
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.users[id]; !ok {
			return apperrors.ErrUserNotFound
		}
		delete(st.users, id)
		return nil
	})
}

type jobRepo struct {
	a access
}

func (r *jobRepo) List(_ context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.a.read(func(st *state) error {
		jobs = make([]*models.Job, 0, len(st.jobs))
		for _, id := range sortedKeys(st.jobs) {
			j := cloneJob(st.jobs[id])
			jobs = append(jobs, &j)
		}
		return nil
	})
	return jobs, err
}

func (r *jobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	var job *models.Job
	err := r.a.read(func(st *state) error {
		j, ok := st.jobs[id]
		if !ok {
			return apperrors.ErrJobNotFound
		}
		j = cloneJob(j)
		job = &j
		return nil
	})
	return job, err
}

// checkCategory mirrors the hazard_category_id foreign key
func checkCategory(st *state, job *models.Job) error {
	if job.HazardCategoryID == nil {
		return nil
	}
	if _, ok := st.categories[*job.HazardCategoryID]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

func (r *jobRepo) Create(_ context.Context, job *models.Job) error {
	return r.a.write(func(st *state) error {
		if err := checkCategory(st, job); err != nil {
			return err
		}
		st.lastJobID++
		job.ID = st.lastJobID
		st.jobs[job.ID] = cloneJob(*job)
		return nil
	})
}

func (r *jobRepo) Update(_ context.Context, job *models.Job) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.jobs[job.ID]; !ok {
			return apperrors.ErrJobNotFound
		}
		if err := checkCategory(st, job); err != nil {
			return err
		}
		st.jobs[job.ID] = cloneJob(*job)
		return nil
	})
}

func (r *jobRepo) Delete(_ context.Context, id int64) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.jobs[id]; !ok {
			return apperrors.ErrJobNotFound
		}
		delete(st.jobs, id)
		return nil
	})
}

func (r *jobRepo) ClearTeamLeader(_ context.Context, userID int64) error {
	return r.a.write(func(st *state) error {
		for id, j := range st.jobs {
			if j.TeamLeaderID != nil && *j.TeamLeaderID == userID {
				j.TeamLeaderID = nil
				st.jobs[id] = j
			}
		}
		return nil
	})
}

type categoryRepo struct {
	a access
}

func (r *categoryRepo) List(_ context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.a.read(func(st *state) error {
		categories = make([]*models.Category, 0, len(st.categories))
		for _, id := range sortedKeys(st.categories) {
			c := st.categories[id]
			categories = append(categories, &c)
		}
		return nil
	})
	return categories, err
}

func (r *categoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	var category *models.Category
	err := r.a.read(func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return apperrors.ErrCategoryNotFound
		}
		category = &c
		return nil
	})
	return category, err
}

func (r *categoryRepo) Count(_ context.Context) (int, error) {
	var count int
	err := r.a.read(func(st *state) error {
		count = len(st.categories)
		return nil
	})
	return count, err
}

func (r *categoryRepo) Create(_ context.Context, category *models.Category) error {
	return r.a.write(func(st *state) error {
		st.lastCategoryID++
		category.ID = st.lastCategoryID
		st.categories[category.ID] = *category
		return nil
	})
}

type departmentRepo struct {
	a access
}

func (r *departmentRepo) List(_ context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	err := r.a.read(func(st *state) error {
		departments = make([]*models.Department, 0, len(st.departments))
		for _, id := range sortedKeys(st.departments) {
			d := cloneDepartment(st.departments[id])
			departments = append(departments, &d)
		}
		return nil
	})
	return departments, err
}

func (r *departmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	var department *models.Department
	err := r.a.read(func(st *state) error {
		d, ok := st.departments[id]
		if !ok {
			return apperrors.ErrDepartmentNotFound
		}
		d = cloneDepartment(d)
		department = &d
		return nil
	})
	return department, err
}

func (r *departmentRepo) Create(_ context.Context, department *models.Department) error {
	return r.a.write(func(st *state) error {
		st.lastDepartmentID++
		department.ID = st.lastDepartmentID
		st.departments[department.ID] = cloneDepartment(*department)
		return nil
	})
}

func (r *departmentRepo) Update(_ context.Context, department *models.Department) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.departments[department.ID]; !ok {
			return apperrors.ErrDepartmentNotFound
		}
		st.departments[department.ID] = cloneDepartment(*department)
		return nil
	})
}

func (r *departmentRepo) Delete(_ context.Context, id int64) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.departments[id]; !ok {
			return apperrors.ErrDepartmentNotFound
		}
		delete(st.departments, id)
		return nil
	})
}

func (r *departmentRepo) ClearChief(_ context.Context, userID int64) error {
	return r.a.write(func(st *state) error {
		for id, d := range st.departments {
			if d.ChiefID != nil && *d.ChiefID == userID {
				d.ChiefID = nil
				st.departments[id] = d
			}
		}
		return nil
	})
}
