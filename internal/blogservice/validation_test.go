package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blognest/internal/common"
)

func TestValidateBlogFields(t *testing.T) {
	testCases := []struct {
		name     string
		validate func(v *common.Validator)
		want     map[string]string
	}{
		{
			name:     "valid fields",
			validate: func(v *common.Validator) { validateTitle(v, "Hello World!"); validateSlug(v, "hello-world") },
			want:     map[string]string{},
		},
		{
			name:     "empty title",
			validate: func(v *common.Validator) { validateTitle(v, "") },
			want:     map[string]string{"title": "must be provided"},
		},
		{
			name:     "long title",
			validate: func(v *common.Validator) { validateTitle(v, strings.Repeat("a", 201)) },
			want:     map[string]string{"title": "must not be more than 200 characters long"},
		},
		{
			name:     "empty content",
			validate: func(v *common.Validator) { validateContent(v, "") },
			want:     map[string]string{"content": "must be provided"},
		},
		{
			name:     "whitespace content",
			validate: func(v *common.Validator) { validateContent(v, "   \n\t ") },
			want:     map[string]string{"content": "must be provided"},
		},
		{
			name:     "page past the maximum",
			validate: func(v *common.Validator) { validatePage(v, MaxPage+1) },
			want:     map[string]string{"page": "must not be more than 1000000"},
		},
		{
			name:     "empty slug",
			validate: func(v *common.Validator) { validateSlug(v, "") },
			want:     map[string]string{"slug": "must be provided or derivable from the title"},
		},
		{
			name:     "slug with spaces",
			validate: func(v *common.Validator) { validateSlug(v, "hello world") },
			want:     map[string]string{"slug": "must only contain lowercase letters, numbers, and hyphens"},
		},
		{
			name:     "reserved tag",
			validate: func(v *common.Validator) { validateTag(v, "All") },
			want:     map[string]string{"tag": "is reserved"},
		},
		{
			name:     "relative image",
			validate: func(v *common.Validator) { validateImage(v, "/images/a.png") },
			want:     map[string]string{"image": "must be an absolute http or https URL"},
		},
		{
			name:     "empty image",
			validate: func(v *common.Validator) { validateImage(v, "") },
			want:     map[string]string{},
		},
		{
			name:     "absolute image",
			validate: func(v *common.Validator) { validateImage(v, "https://images.unsplash.com/photo.jpg") },
			want:     map[string]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			tc.validate(v)
			assert.Equal(t, tc.want, v.Errors)
		})
	}
}
