package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/auth"
)

const validUserJSON = `{"surname":"Scott","name":"Ridley","age":21,"position":"captain","speciality":"research engineer","address":"module_1","email":"scott_chief@mars.org","hashed_password":"cap","city_from":"Moscow"}`

func TestUserCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newSeededStore(t), zerolog.Nop())

	user, err := svc.Create(ctx, jsonBody(t, validUserJSON))
	require.NoError(t, err)
	assert.NotEqual(t, "cap", user.HashedPassword)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "cap"))

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Scott Ridley", got.FullName())
	assert.Equal(t, 21, got.Age)
	assert.Equal(t, "Moscow", got.CityFrom)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newSeededStore(t), zerolog.Nop())

	_, err := svc.Create(ctx, jsonBody(t, validUserJSON))
	require.NoError(t, err)

	_, err = svc.Create(ctx, jsonBody(t, validUserJSON))
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Contains(t, err.Error(), "already exists")

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserUpdateRechecksEmailAndRehashes(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := NewUserService(store, zerolog.Nop())

	first, err := svc.Create(ctx, jsonBody(t, validUserJSON))
	require.NoError(t, err)
	createUser(t, store, "taken@mars.org")

	_, err = svc.Update(ctx, first.ID, jsonBody(t, `{"email":"taken@mars.org"}`))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	updated, err := svc.Update(ctx, first.ID, jsonBody(t, `{"email":"scott_chief@mars.org","hashed_password":"new"}`))
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.HashedPassword, "new"))
	assert.Equal(t, "Ridley", updated.Name)

	_, err = svc.Update(ctx, 999, jsonBody(t, `{"age":3}`))
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserDeleteClearsReferences(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := NewUserService(store, zerolog.Nop())

	leader := createUser(t, store, "leader@mars.org")
	job := &models.Job{JobTitle: "Dig", TeamLeaderID: models.Int64Ptr(leader.ID), HazardCategoryID: models.Int64Ptr(1)}
	require.NoError(t, store.Jobs().Create(ctx, job))
	department := &models.Department{Title: "Geology", ChiefID: models.Int64Ptr(leader.ID)}
	require.NoError(t, store.Departments().Create(ctx, department))

	require.NoError(t, svc.Delete(ctx, leader.ID))

	gotJob, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, gotJob.TeamLeaderID)

	gotDepartment, err := store.Departments().GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDepartment.ChiefID)

	assert.ErrorIs(t, svc.Delete(ctx, leader.ID), apperrors.ErrUserNotFound)
}
