package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/app/models"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	BcryptCost = bcrypt.MinCost
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("wrong horse")
	require.NoError(t, err)
	assert.NotEqual(t, "wrong horse", hash)

	assert.True(t, CheckPassword(hash, "wrong horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
	assert.False(t, CheckPassword("", "wrong horse"))
}

func newTestSessions() *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:   "test-secret",
		TTL:         time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
		Issuer:      "jobtracker-test",
	})
}

func TestSessionRoundtrip(t *testing.T) {
	sessions := newTestSessions()
	user := &models.User{ID: 7, Email: "watney@mars.org", Name: "Mark", Surname: "Watney"}

	token, claims, err := sessions.Issue(user, true)
	require.NoError(t, err)
	assert.True(t, claims.Remember)
	assert.NotEmpty(t, claims.ID)

	verified, err := sessions.Verify(token)
	require.NoError(t, err)

	identity, err := verified.Identity()
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "watney@mars.org", identity.Email)
	assert.Equal(t, "Watney Mark", identity.Name)
	assert.Equal(t, claims.ID, identity.TokenID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), identity.ExpiresAt, time.Minute)
}

func TestSessionRejectsTamperedAndExpired(t *testing.T) {
	sessions := newTestSessions()
	user := &models.User{ID: 1, Email: "a@mars.org"}

	token, _, err := sessions.Issue(user, false)
	require.NoError(t, err)

	other := NewSessionService(SessionConfig{SecretKey: "other", TTL: time.Hour})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	sessions.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = sessions.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLifetime(t *testing.T) {
	sessions := newTestSessions()
	assert.Equal(t, time.Hour, sessions.Lifetime(false))
	assert.Equal(t, 30*24*time.Hour, sessions.Lifetime(true))
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, IdentityFrom(ctx))

	id := &Identity{UserID: 3}
	assert.Same(t, id, IdentityFrom(WithIdentity(ctx, id)))
}
