package dto

import "github.com/yigit/jobtracker/internal/app/models"

// SuccessResponse is returned by update and delete endpoints
type SuccessResponse struct {
	Success string `json:"success"`
}

// JobListResponse is the body of GET /api/jobs
type JobListResponse struct {
	Jobs []*models.Job `json:"jobs"`
}

// JobResponse is the body of GET /api/jobs/:id
type JobResponse struct {
	Job *models.Job `json:"job"`
}

// JobCreatedResponse is the body of POST /api/jobs
type JobCreatedResponse struct {
	ID  int64       `json:"id"`
	Job *models.Job `json:"job"`
}

// JobUpdatedResponse is the body of PUT /api/jobs/:id
type JobUpdatedResponse struct {
	Success string      `json:"success"`
	Job     *models.Job `json:"job"`
}

// UserListResponse is the body of GET /api/users
type UserListResponse struct {
	Users []*models.User `json:"users"`
}

// UserResponse is the body of GET /api/users/:id
type UserResponse struct {
	User *models.User `json:"user"`
}

// UserCreatedResponse is the body of POST /api/users
type UserCreatedResponse struct {
	ID   int64        `json:"id"`
	User *models.User `json:"user"`
}

// UserUpdatedResponse is the body of PUT /api/users/:id
type UserUpdatedResponse struct {
	Success string       `json:"success"`
	User    *models.User `json:"user"`
}

// CategoryListResponse is the body of GET /api/categories
type CategoryListResponse struct {
	Categories []*models.Category `json:"categories"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
