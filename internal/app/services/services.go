// Package services holds the rules shared by the HTML and JSON handlers.
//
// Services defined in this package:
// - JobService: Handles job CRUD with team leader ownership
// - UserService: Handles colonist accounts exposed by the API
// - DepartmentService: Handles department CRUD with chief ownership
// - CategoryService: Lists hazard categories
// - AuthService: Handles login, registration, logout and session lookup
// - MapService: Renders and cleans up user location maps
//
// Every write runs inside one repositories.Store unit of work. Lookups happen
// first (not found), then ownership (permission denied), then payload
// validation, so a rejected request never leaves partial changes behind.
package services

import (
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// UpdateMode selects how an update payload is validated
type UpdateMode int

const (
	// PartialUpdate checks and applies only the fields present in the payload
	PartialUpdate UpdateMode = iota
	// FullUpdate requires every field, as HTML forms always submit them all
	FullUpdate
)

func (m UpdateMode) validate(rules validation.RuleSet, p validation.Payload) (validation.Fields, error) {
	if m == FullUpdate {
		return rules.Validate(p)
	}
	return rules.ValidatePartial(p)
}

// fieldError builds a single-field validation failure
func fieldError(field, message string) error {
	return validation.Errors{{Field: field, Message: message}}
}
