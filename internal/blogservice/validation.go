package blogservice

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/sushihentaime/blognest/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(utf8.RuneCountInString(title) <= 200, "title", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(strings.TrimSpace(content) != "", "content", "must be provided")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided or derivable from the title")
	v.Check(len(slug) <= 200, "slug", "must not be more than 200 characters long")
	v.Check(slug == "" || SlugRX.MatchString(slug), "slug", "must only contain lowercase letters, numbers, and hyphens")
}

func validateExcerpt(v *common.Validator, excerpt string) {
	v.Check(utf8.RuneCountInString(excerpt) <= 500, "excerpt", "must not be more than 500 characters long")
}

func validateTag(v *common.Validator, tag string) {
	v.Check(utf8.RuneCountInString(tag) <= 50, "tag", "must not be more than 50 characters long")
	v.Check(tag != CategoryAll, "tag", "is reserved")
}

func validateImage(v *common.Validator, image string) {
	if image == "" {
		return
	}

	u, err := url.Parse(image)
	ok := err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	v.Check(ok, "image", "must be an absolute http or https URL")
}

func validatePage(v *common.Validator, page int) {
	v.Check(page <= MaxPage, "page", fmt.Sprintf("must not be more than %d", MaxPage))
}
