package userservice

import (
	"github.com/sushihentaime/blognest/internal/common"
)

func ValidateToken(v *common.Validator, token string) {
	v.Check(token != "", "token", "must be provided")
	v.Check(len(token) == 26, "token", "invalid token")
}

func validateProviderToken(v *common.Validator, token string) {
	v.Check(token != "", "access_token", "must be provided")
	v.Check(len(token) <= 4096, "access_token", "must not be more than 4096 bytes long")
}

func validateIdentity(v *common.Validator, identity *Identity) {
	v.Check(identity.Email != "", "email", "must be provided")
	v.Check(common.EmailRX.MatchString(identity.Email), "email", "must be a valid email address")
	v.Check(len(identity.Name) <= 200, "name", "must not be more than 200 bytes long")
}
