package services

import (
	"context"
	"fmt"

	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
)

// CategoryService exposes the read-only hazard categories
type CategoryService struct {
	store repositories.Store
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(store repositories.Store) *CategoryService {
	return &CategoryService{store: store}
}

// List returns every category ordered by id
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.store.Categories().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}
