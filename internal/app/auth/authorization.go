package auth

import (
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	pkgauth "github.com/yigit/jobtracker/internal/pkg/auth"
)

// SuperuserID is the user allowed to modify every job and department
const SuperuserID int64 = 1

// Permission errors returned to handlers
var (
	ErrNotJobOwner        = apperrors.NewForbiddenError("only the team leader or the superuser can modify this job")
	ErrNotDepartmentChief = apperrors.NewForbiddenError("only the chief or the superuser can modify this department")
)

// CanModify reports whether identity owns the resource or is the superuser
func CanModify(identity *pkgauth.Identity, ownerID int64) bool {
	if identity == nil {
		return false
	}
	return identity.UserID == SuperuserID || (ownerID != 0 && identity.UserID == ownerID)
}

// AuthorizeOwner returns denied when identity may not modify a resource owned by ownerID
func AuthorizeOwner(identity *pkgauth.Identity, ownerID int64, denied error) error {
	if CanModify(identity, ownerID) {
		return nil
	}
	if denied == nil {
		denied = apperrors.ErrPermissionDenied
	}
	return denied
}
