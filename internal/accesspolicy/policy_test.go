package accesspolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blognest/internal/common"
)

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name       string
		adminEmail string
		actor      string
		want       bool
	}{
		{name: "admin", adminEmail: "admin@example.com", actor: "admin@example.com", want: true},
		{name: "other user", adminEmail: "admin@example.com", actor: "reader@example.com", want: false},
		{name: "case differs", adminEmail: "admin@example.com", actor: "Admin@example.com", want: false},
		{name: "empty actor", adminEmail: "admin@example.com", actor: "", want: false},
		{name: "no admin configured", adminEmail: "", actor: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.adminEmail)
			assert.Equal(t, tc.want, p.Authorize(tc.actor))

			err := p.Check(tc.actor)
			if tc.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrForbidden)
			}
		})
	}
}

func TestNilPolicy(t *testing.T) {
	var p *Policy
	assert.False(t, p.Authorize("admin@example.com"))
}
