// Package accesspolicy holds the single-admin authorization gate for content mutations.
// There are no roles: exactly one configured email may create, edit and delete blogs.
package accesspolicy

import "github.com/sushihentaime/blognest/internal/common"

type Policy struct {
	adminEmail string
}

func New(adminEmail string) *Policy {
	return &Policy{adminEmail: adminEmail}
}

// Authorize reports whether actorEmail is the configured admin. The comparison is exact.
// An unset admin email authorizes nobody.
func (p *Policy) Authorize(actorEmail string) bool {
	if p == nil || p.adminEmail == "" {
		return false
	}

	return actorEmail == p.adminEmail
}

// Check is Authorize expressed as an error for service code.
func (p *Policy) Check(actorEmail string) error {
	if !p.Authorize(actorEmail) {
		return common.ErrForbidden
	}

	return nil
}
