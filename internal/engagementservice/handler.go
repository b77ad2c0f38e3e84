package engagementservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

func NewEngagementService(db *sql.DB) *EngagementService {
	return &EngagementService{m: newEngagementModel(db)}
}

func validatePair(userID, blogID uuid.UUID) error {
	v := common.NewValidator()
	validateID(v, userID, "user_id")
	validateID(v, blogID, "blog_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

// ToggleLike likes the blog for the user, or removes the like if one exists. It returns
// whether the blog is liked afterwards.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	if err := validatePair(userID, blogID); err != nil {
		return false, err
	}

	return s.m.toggle(ctx, likesTable, userID, blogID)
}

// ToggleBookmark is ToggleLike for bookmarks.
func (s *EngagementService) ToggleBookmark(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	if err := validatePair(userID, blogID); err != nil {
		return false, err
	}

	return s.m.toggle(ctx, bookmarksTable, userID, blogID)
}

func (s *EngagementService) IsLiked(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	return s.m.exists(ctx, likesTable, userID, blogID)
}

func (s *EngagementService) IsBookmarked(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	return s.m.exists(ctx, bookmarksTable, userID, blogID)
}

// ListLikes returns the likes of a blog, newest first.
func (s *EngagementService) ListLikes(ctx context.Context, blogID uuid.UUID) ([]Like, error) {
	return s.m.listLikes(ctx, blogID)
}

func (s *EngagementService) ListLikedBlogs(ctx context.Context, userID uuid.UUID) ([]SavedBlog, error) {
	return s.m.listSavedBlogs(ctx, likesTable, userID)
}

func (s *EngagementService) ListBookmarkedBlogs(ctx context.Context, userID uuid.UUID) ([]SavedBlog, error) {
	return s.m.listSavedBlogs(ctx, bookmarksTable, userID)
}

// ListComments returns the comments of a blog, newest first. An unknown blog has no comments.
func (s *EngagementService) ListComments(ctx context.Context, blogID uuid.UUID) ([]Comment, error) {
	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.listComments(ctx, blogID)
}

func (s *EngagementService) GetComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	return s.m.getComment(ctx, id)
}

func (s *EngagementService) CreateComment(ctx context.Context, blogID, userID uuid.UUID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)

	v := common.NewValidator()
	validateID(v, blogID, "blog_id")
	validateID(v, userID, "user_id")
	validateCommentContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := &Comment{BlogID: blogID, UserID: userID, Content: content}
	if err := s.m.insertComment(ctx, c); err != nil {
		return nil, err
	}

	// reload to attach the author
	return s.m.getComment(ctx, c.ID)
}

func (s *EngagementService) UpdateComment(ctx context.Context, id uuid.UUID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)

	v := common.NewValidator()
	validateCommentContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateComment(ctx, id, content)
}

func (s *EngagementService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return s.m.deleteComment(ctx, id)
}
