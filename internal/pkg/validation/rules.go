package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

var validate = validator.New()

// Kind is the type a field must have
type Kind int

const (
	String Kind = iota
	Int
	Bool
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "str"
	}
}

// Rule describes one field
type Rule struct {
	Field    string
	Kind     Kind
	Required bool
	// Tag holds validator constraints applied to the typed value, e.g. "required,email"
	Tag string
	// EqualTo names another string field this one must match verbatim
	EqualTo string
	// Message replaces the generated message for Tag and EqualTo failures
	Message string
}

// RuleSet is the declared rules of one entity
type RuleSet []Rule

// Fields holds the typed values that passed validation
type Fields map[string]any

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f Fields) String(name string) (string, bool) {
	v, ok := f[name].(string)
	return v, ok
}

func (f Fields) Int(name string) (int64, bool) {
	v, ok := f[name].(int64)
	return v, ok
}

func (f Fields) Bool(name string) (bool, bool) {
	v, ok := f[name].(bool)
	return v, ok
}

// FieldError is a failure on one field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors lists every failing field
type Errors []FieldError

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, fe := range e {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

func (e Errors) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// For returns the message for field, or ""
func (e Errors) For(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// ByField maps field names to messages
func (e Errors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// AsErrors extracts validation errors from err
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// Validate checks every rule; required fields must be present
func (rs RuleSet) Validate(p Payload) (Fields, error) {
	return rs.run(p, false)
}

// ValidatePartial checks only the fields present in p
func (rs RuleSet) ValidatePartial(p Payload) (Fields, error) {
	return rs.run(p, true)
}

func (rs RuleSet) run(p Payload, partial bool) (Fields, error) {
	fields := Fields{}
	var errs Errors

	for _, rule := range rs {
		if !p.Has(rule.Field) {
			if rule.Required && !partial {
				errs = append(errs, FieldError{Field: rule.Field, Message: "Missing field: " + rule.Field})
			}
			continue
		}

		value, err := typedValue(p, rule)
		if errors.Is(err, errBlank) {
			if rule.Required {
				errs = append(errs, FieldError{Field: rule.Field, Message: rule.Field + " is required"})
			}
			continue
		}
		if err != nil {
			errs = append(errs, FieldError{
				Field:   rule.Field,
				Message: "Field " + rule.Field + " must be of type " + rule.Kind.String(),
			})
			continue
		}

		if msg := rule.check(p, value, partial); msg != "" {
			errs = append(errs, FieldError{Field: rule.Field, Message: msg})
			continue
		}

		fields[rule.Field] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return fields, nil
}

func typedValue(p Payload, rule Rule) (any, error) {
	switch rule.Kind {
	case Int:
		return p.Int(rule.Field)
	case Bool:
		return p.Bool(rule.Field)
	default:
		return p.String(rule.Field)
	}
}

// check applies Tag and EqualTo; it returns the failure message or ""
func (rule Rule) check(p Payload, value any, partial bool) string {
	if rule.Tag != "" {
		if err := validate.Var(value, rule.Tag); err != nil {
			return rule.message(err)
		}
	}

	if rule.EqualTo != "" {
		if partial && !p.Has(rule.EqualTo) {
			return ""
		}
		other, err := p.String(rule.EqualTo)
		if err != nil {
			other = ""
		}
		if err := validate.VarWithValue(value, other, "eqfield"); err != nil {
			if rule.Message != "" {
				return rule.Message
			}
			return rule.Field + " must be equal to " + rule.EqualTo
		}
	}

	return ""
}

func (rule Rule) message(err error) string {
	if rule.Message != "" {
		return rule.Message
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return formatValidationError(rule.Field, fieldErrs[0])
	}
	return rule.Field + " is invalid"
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
