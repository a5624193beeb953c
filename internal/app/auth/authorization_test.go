package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	pkgauth "github.com/yigit/jobtracker/internal/pkg/auth"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := &pkgauth.Identity{UserID: 5}
	stranger := &pkgauth.Identity{UserID: 6}
	superuser := &pkgauth.Identity{UserID: SuperuserID}

	assert.NoError(t, AuthorizeOwner(owner, 5, ErrNotJobOwner))
	assert.NoError(t, AuthorizeOwner(superuser, 5, ErrNotJobOwner))

	err := AuthorizeOwner(stranger, 5, ErrNotJobOwner)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// a resource without owner is only open to the superuser
	assert.ErrorIs(t, AuthorizeOwner(&pkgauth.Identity{UserID: 0}, 0, nil), apperrors.ErrPermissionDenied)
	assert.NoError(t, AuthorizeOwner(superuser, 0, nil))
	assert.ErrorIs(t, AuthorizeOwner(nil, 5, nil), apperrors.ErrPermissionDenied)
}
