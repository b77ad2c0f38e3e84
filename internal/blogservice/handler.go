package blogservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/accesspolicy"
	"github.com/sushihentaime/blognest/internal/common"
	"github.com/sushihentaime/blognest/internal/engagementservice"
)

func NewBlogService(db *sql.DB, e *engagementservice.EngagementService, policy *accesspolicy.Policy) *BlogService {
	return &BlogService{m: newBlogModel(db), e: e, policy: policy}
}

type CreateBlogRequest struct {
	Title    string        `json:"title"`
	Slug     string        `json:"slug"`
	Content  string        `json:"content"`
	Excerpt  string        `json:"excerpt"`
	Tag      string        `json:"tag"`
	Image    string        `json:"image"`
	AuthorID uuid.NullUUID `json:"author_id"`
}

// UpdateBlogRequest holds the mutable fields. Nil fields are left untouched; the slug never changes.
type UpdateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Excerpt *string `json:"excerpt"`
	Tag     *string `json:"tag"`
	Image   *string `json:"image"`
}

func validateBlog(v *common.Validator, blog *Blog) {
	validateTitle(v, blog.Title)
	validateContent(v, blog.Content)
	validateExcerpt(v, blog.Excerpt)
	validateTag(v, blog.Tag)
	validateImage(v, blog.Image)
}

// CreateBlog stores a new blog for the admin. Without an explicit slug one is derived from
// the title. A slug already taken, in any letter case, fails with ErrDuplicateSlug.
func (s *BlogService) CreateBlog(ctx context.Context, actorEmail string, req *CreateBlogRequest) (*Blog, error) {
	if err := s.policy.Check(actorEmail); err != nil {
		return nil, err
	}

	blog := &Blog{
		Title:    strings.TrimSpace(req.Title),
		Content:  sanitizeMarkdown(req.Content),
		Excerpt:  strings.TrimSpace(req.Excerpt),
		Tag:      strings.TrimSpace(req.Tag),
		Image:    strings.TrimSpace(req.Image),
		AuthorID: req.AuthorID,
	}

	if req.Slug != "" {
		blog.Slug = normalizeSlug(req.Slug)
	} else {
		blog.Slug = Slugify(blog.Title)
	}

	v := common.NewValidator()
	validateBlog(v, blog)
	validateSlug(v, blog.Slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, blog); err != nil {
		return nil, err
	}

	blog.Comments = []engagementservice.Comment{}
	blog.Likes = []engagementservice.Like{}

	return blog, nil
}

// GetBlogBySlug returns the blog with its author, comments and likes.
func (s *BlogService) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	slug = strings.TrimSpace(slug)

	v := common.NewValidator()
	v.Check(slug != "", "slug", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	blog.Comments, err = s.e.ListComments(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	blog.Likes, err = s.e.ListLikes(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// ListBlogs returns a page of blog summaries, newest first. Paging values below one fall
// back to the defaults, the limit is capped at MaxLimit and a page past MaxPage is rejected.
func (s *BlogService) ListBlogs(ctx context.Context, filter ListFilter) ([]BlogSummary, error) {
	v := common.NewValidator()
	validatePage(v, filter.Page)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if filter.Page < 1 {
		filter.Page = DefaultPage
	}

	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}

	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	tag := strings.TrimSpace(filter.Category)
	if tag == CategoryAll {
		tag = ""
	}

	return s.m.list(ctx, tag, filter.Limit, (filter.Page-1)*filter.Limit)
}

// UpdateBlog applies the non-nil fields of req to the blog identified by slug.
func (s *BlogService) UpdateBlog(ctx context.Context, actorEmail, slug string, req *UpdateBlogRequest) (*Blog, error) {
	if err := s.policy.Check(actorEmail); err != nil {
		return nil, err
	}

	blog, err := s.m.getBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
	}

	if req.Content != nil {
		blog.Content = sanitizeMarkdown(*req.Content)
	}

	if req.Excerpt != nil {
		blog.Excerpt = strings.TrimSpace(*req.Excerpt)
	}

	if req.Tag != nil {
		blog.Tag = strings.TrimSpace(*req.Tag)
	}

	if req.Image != nil {
		blog.Image = strings.TrimSpace(*req.Image)
	}

	v := common.NewValidator()
	validateBlog(v, blog)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog removes the blog along with its comments, likes and bookmarks.
func (s *BlogService) DeleteBlog(ctx context.Context, actorEmail, slug string) error {
	if err := s.policy.Check(actorEmail); err != nil {
		return err
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return common.ErrRecordNotFound
	}

	return s.m.deleteBySlug(ctx, slug)
}

// ListCategories returns the distinct non-empty tags in alphabetical order.
func (s *BlogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.m.categories(ctx)
}

// RelatedBlogs returns the newest blogs sharing the tag of the blog identified by slug.
// An untagged blog has no related blogs.
func (s *BlogService) RelatedBlogs(ctx context.Context, slug string, limit int) ([]BlogSummary, error) {
	if limit < 1 {
		limit = DefaultRelatedLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	blog, err := s.m.getBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	if blog.Tag == "" {
		return []BlogSummary{}, nil
	}

	return s.m.related(ctx, blog.Tag, blog.ID, limit)
}

func (s *BlogService) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	return s.m.sitemap(ctx)
}

// Stats backs the admin dashboard.
func (s *BlogService) Stats(ctx context.Context, actorEmail string) (*Stats, error) {
	if err := s.policy.Check(actorEmail); err != nil {
		return nil, err
	}

	total, err := s.m.count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalBlogs: total}

	latest, err := s.m.list(ctx, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(latest) > 0 {
		stats.Latest = &latest[0]
	}

	stats.Timeline, err = s.m.timeline(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
