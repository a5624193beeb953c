package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/app/repositories/memory"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/sessionstore"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

func newAuthService(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := newSeededStore(t)
	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		TTL:         time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
		Issuer:      "jobtracker",
	})
	return NewAuthService(store, sessions, sessionstore.NewMemoryStore(), zerolog.Nop()), store
}

func registerForm(email, password, again string) validation.FormPayload {
	return validation.NewFormPayload(form(
		"email", email,
		"password", password,
		"password_again", again,
		"name", "Mark",
		"surname", "Watney",
		"city_from", "Chicago",
	))
}

func loginForm(email, password string, remember bool) validation.FormPayload {
	values := form("email", email, "password", password)
	if remember {
		values.Set("remember_me", "y")
	}
	return validation.NewFormPayload(values, "remember_me")
}

func TestRegisterStoresCityAsAddress(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthService(t)

	user, err := svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	require.NoError(t, err)

	got, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicago", got.Address)
	assert.Equal(t, "Chicago", got.CityFrom)
	assert.True(t, auth.CheckPassword(got.HashedPassword, "potato"))
}

func TestRegisterRejectsMismatchAndDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthService(t)

	_, err := svc.Register(ctx, registerForm("watney@mars.org", "potato", "tomato"))
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match", errs.For("password_again"))

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.EqualError(t, err, "User with this email already exists")

	users, err = store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, loginForm("watney@mars.org", "tomato", false))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.EqualError(t, err, "Incorrect email or password")

	_, err = svc.Login(ctx, loginForm("nobody@mars.org", "potato", false))
	assert.ErrorIs(t, err, ErrIncorrectCredentials)

	session, err := svc.Login(ctx, loginForm("watney@mars.org", "potato", true))
	require.NoError(t, err)
	assert.True(t, session.Remember)
	assert.Equal(t, user.ID, session.User.ID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)

	identity, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "Watney Mark", identity.Name)
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	require.NoError(t, err)
	session, err := svc.Login(ctx, loginForm("watney@mars.org", "potato", false))
	require.NoError(t, err)

	identity, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, identity))

	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
}

func TestAuthenticateRejectsDeletedUserAndGarbage(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthService(t)

	user, err := svc.Register(ctx, registerForm("watney@mars.org", "potato", "potato"))
	require.NoError(t, err)
	session, err := svc.Login(ctx, loginForm("watney@mars.org", "potato", false))
	require.NoError(t, err)

	require.NoError(t, store.Users().Delete(ctx, user.ID))
	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	_, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}
