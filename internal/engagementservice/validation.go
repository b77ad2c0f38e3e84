package engagementservice

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

func validateCommentContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
	v.Check(utf8.RuneCountInString(content) <= 5000, "content", "must not be more than 5000 characters long")
}

func validateID(v *common.Validator, id uuid.UUID, name string) {
	v.Check(id != uuid.Nil, name, "must be provided")
}
