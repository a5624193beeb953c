package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "login.html", "register.html", "job_form.html",
		"departments.html", "department_form.html", "users_show.html", "error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestEmptyFormRendersBlankValues(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "login.html", map[string]any{
		"Title": "Authorization",
		"Form": map[string]any{
			"Values": map[string]string{},
			"Errors": map[string]string{},
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "no value")
	assert.Contains(t, buf.String(), `<a href="/login">Log in</a>`)
}
