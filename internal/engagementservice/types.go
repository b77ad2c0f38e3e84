package engagementservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID      `json:"id"`
	BlogID    uuid.UUID      `json:"blog_id"`
	UserID    uuid.UUID      `json:"user_id"`
	Content   string         `json:"content"`
	Author    *CommentAuthor `json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CommentAuthor is the public part of the commenting user.
type CommentAuthor struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Like and Bookmark rows are identified by the (UserID, BlogID) pair and are never updated.
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	BlogID    uuid.UUID `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Bookmark struct {
	UserID    uuid.UUID `json:"user_id"`
	BlogID    uuid.UUID `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedBlog is a blog as seen from a user's likes or bookmarks.
type SavedBlog struct {
	BlogID  uuid.UUID `json:"blog_id"`
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	Excerpt string    `json:"excerpt"`
	Tag     string    `json:"tag"`
	Image   string    `json:"image"`
	SavedAt time.Time `json:"saved_at"`
}

// pairTable names a table keyed by (user_id, blog_id).
type pairTable string

const (
	likesTable     pairTable = "likes"
	bookmarksTable pairTable = "bookmarks"
)

type EngagementModel struct {
	db *sql.DB
}

type EngagementService struct {
	m *EngagementModel
}
