package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "must be between 3 and 100 characters long")
	v.Check(true, "content", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)

	var ve ValidationError
	assert.True(t, errors.As(v.ValidationError(), &ve))
	assert.Equal(t, "must be provided", ve.Errors["title"])
}

func TestEmailRX(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "valid", email: "admin@example.com", want: true},
		{name: "missing domain", email: "admin@", want: false},
		{name: "missing at", email: "admin.example.com", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EmailRX.MatchString(tc.email))
		})
	}
}
