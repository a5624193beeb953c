package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/jobtracker/internal/app/auth"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

func departmentForm(title, chief string) validation.FormPayload {
	return validation.NewFormPayload(form(
		"title", title,
		"chief_id", chief,
		"members", "2, 3",
		"email", "geo@mars.org",
	))
}

func TestDepartmentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewDepartmentService(newSeededStore(t), zerolog.Nop())

	created, err := svc.Create(ctx, departmentForm("Geology", "2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.OwnerID())

	_, err = svc.Update(ctx, identity(3), created.ID, departmentForm("Stolen", "3"), FullUpdate)
	assert.ErrorIs(t, err, appauth.ErrNotDepartmentChief)

	updated, err := svc.Update(ctx, identity(2), created.ID, departmentForm("Geology and mining", "2"), FullUpdate)
	require.NoError(t, err)
	assert.Equal(t, "Geology and mining", updated.Title)

	assert.ErrorIs(t, svc.Delete(ctx, identity(3), created.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, identity(appauth.SuperuserID), created.ID))

	departments, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, departments)
}

func TestDepartmentValidation(t *testing.T) {
	svc := NewDepartmentService(newSeededStore(t), zerolog.Nop())

	_, err := svc.Create(context.Background(), departmentForm("", "x"))
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "title is required", errs.For("title"))
	assert.Equal(t, "Field chief_id must be of type int", errs.For("chief_id"))
}

func TestDepartmentMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewDepartmentService(newSeededStore(t), zerolog.Nop())

	_, err := svc.Update(ctx, identity(1), 42, departmentForm("x", "1"), FullUpdate)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, identity(1), 42), apperrors.ErrDepartmentNotFound)
}

func TestCategoryList(t *testing.T) {
	categories, err := NewCategoryService(newSeededStore(t)).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}
