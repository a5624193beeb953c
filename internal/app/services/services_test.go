package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories/memory"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/validation"
	"github.com/yigit/jobtracker/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.BcryptCost = bcrypt.MinCost
}

func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	_, err := seed.CreateDefaultCategories(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func jsonBody(t *testing.T, body string) validation.JSONPayload {
	t.Helper()
	p, err := validation.ParseJSONPayload(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func form(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Set(pairs[i], pairs[i+1])
	}
	return values
}

func identity(userID int64) *auth.Identity {
	return &auth.Identity{UserID: userID}
}

func createUser(t *testing.T, store *memory.Store, email string) *models.User {
	t.Helper()
	user := &models.User{Surname: "Watney", Name: "Mark", Email: email}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}
