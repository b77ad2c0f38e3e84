package blogservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/accesspolicy"
	"github.com/sushihentaime/blognest/internal/engagementservice"
)

const (
	DefaultPage         = 1
	DefaultLimit        = 20
	MaxLimit            = 100
	MaxPage             = 1_000_000
	DefaultRelatedLimit = 3

	// CategoryAll is the category value that disables filtering.
	CategoryAll = "All"
)

type Blog struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
	// Content is stored in Markdown format.
	Content   string                      `json:"content"`
	Excerpt   string                      `json:"excerpt"`
	Tag       string                      `json:"tag"`
	Image     string                      `json:"image"`
	AuthorID  uuid.NullUUID               `json:"author_id"`
	Author    *Author                     `json:"author,omitempty"`
	Comments  []engagementservice.Comment `json:"comments"`
	Likes     []engagementservice.Like    `json:"likes"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	Version   int                         `json:"version"`
}

// Author is the public profile of a blog's author.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	PhotoURL string    `json:"photo_url"`
}

// BlogSummary is the listing form of a Blog: no content, engagement reduced to counts.
type BlogSummary struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Excerpt      string        `json:"excerpt"`
	Tag          string        `json:"tag"`
	Image        string        `json:"image"`
	AuthorID     uuid.NullUUID `json:"author_id"`
	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type ListFilter struct {
	Category string
	Page     int
	Limit    int
}

type SitemapEntry struct {
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalBlogs int          `json:"total_blogs"`
	Latest     *BlogSummary `json:"latest"`
	Timeline   []DailyCount `json:"timeline"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m      *BlogModel
	e      *engagementservice.EngagementService
	policy *accesspolicy.Policy
}
