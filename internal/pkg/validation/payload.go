package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

var (
	// ErrEmptyRequest is returned for a missing, empty or non-object JSON body
	ErrEmptyRequest = apperrors.NewBadRequestError("Empty request")
	// ErrMalformedJSON is returned when the body is not valid JSON
	ErrMalformedJSON = apperrors.NewBadRequestError("Malformed JSON body")

	errWrongType = errors.New("wrong type")
	errBlank     = errors.New("blank value")
)

// Payload is a set of submitted fields, either from a JSON body or an HTML form
type Payload interface {
	Has(field string) bool
	String(field string) (string, error)
	Int(field string) (int64, error)
	Bool(field string) (bool, error)
}

// JSONPayload is a decoded JSON object. Values keep their JSON types, so a
// string is never accepted where an int is expected.
type JSONPayload map[string]any

// ParseJSONPayload decodes an object body, keeping numbers as json.Number
func ParseJSONPayload(r io.Reader) (JSONPayload, error) {
	if r == nil {
		return nil, ErrEmptyRequest
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrMalformedJSON
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyRequest
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, ErrMalformedJSON
	}

	object, ok := raw.(map[string]any)
	if !ok || len(object) == 0 {
		return nil, ErrEmptyRequest
	}
	return JSONPayload(object), nil
}

func (p JSONPayload) Has(field string) bool {
	_, ok := p[field]
	return ok
}

func (p JSONPayload) String(field string) (string, error) {
	s, ok := p[field].(string)
	if !ok {
		return "", errWrongType
	}
	return s, nil
}

// Int accepts integral JSON numbers only; 5.5 and "5" are rejected
func (p JSONPayload) Int(field string) (int64, error) {
	n, ok := p[field].(json.Number)
	if !ok {
		return 0, errWrongType
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, errWrongType
	}
	return v, nil
}

func (p JSONPayload) Bool(field string) (bool, error) {
	b, ok := p[field].(bool)
	if !ok {
		return false, errWrongType
	}
	return b, nil
}

// FormPayload adapts url-encoded form values. Checkbox fields are always
// present because browsers omit unchecked boxes.
type FormPayload struct {
	Values     url.Values
	Checkboxes []string
}

// NewFormPayload wraps values with the given checkbox field names
func NewFormPayload(values url.Values, checkboxes ...string) FormPayload {
	return FormPayload{Values: values, Checkboxes: checkboxes}
}

func (p FormPayload) isCheckbox(field string) bool {
	for _, c := range p.Checkboxes {
		if c == field {
			return true
		}
	}
	return false
}

func (p FormPayload) Has(field string) bool {
	if p.isCheckbox(field) {
		return true
	}
	_, ok := p.Values[field]
	return ok
}

func (p FormPayload) String(field string) (string, error) {
	return p.Values.Get(field), nil
}

// Int parses a decimal integer; "twenty" and "5.5" are rejected
func (p FormPayload) Int(field string) (int64, error) {
	raw := strings.TrimSpace(p.Values.Get(field))
	if raw == "" {
		return 0, errBlank
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errWrongType
	}
	return v, nil
}

func (p FormPayload) Bool(field string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(p.Values.Get(field))) {
	case "", "false", "off", "0", "n", "no":
		return false, nil
	default:
		return true, nil
	}
}
