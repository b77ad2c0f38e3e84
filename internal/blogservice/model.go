package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

var (
	ErrDuplicateSlug = errors.New("a blog with this slug already exists")
	ErrEditConflict  = errors.New("unable to update the record due to an edit conflict, please try again")
	ErrAuthorMissing = common.ValidationError{Errors: map[string]string{"author_id": "does not exist"}}
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, slug, content, excerpt, tag, image, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at, version`

	args := []any{blog.Title, blog.Slug, blog.Content, blog.Excerpt, blog.Tag, blog.Image, blog.AuthorID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "blogs_slug_lower_idx"):
			return ErrDuplicateSlug
		case common.ForeignKeyError(err, "blogs_author_id_fkey"):
			return ErrAuthorMissing
		default:
			return common.DBError(err)
		}
	}

	return nil
}

// getBySlug looks the blog up case-insensitively and joins its author, if any.
func (m *BlogModel) getBySlug(ctx context.Context, slug string) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.slug, b.content, b.excerpt, b.tag, b.image, b.author_id,
			b.created_at, b.updated_at, b.version, u.name, u.photo_url
		FROM blogs b
		LEFT JOIN users u ON u.id = b.author_id
		WHERE lower(b.slug) = lower($1)`

	var (
		blog     Blog
		name     sql.NullString
		photoURL sql.NullString
	)

	err := m.db.QueryRowContext(ctx, query, slug).Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Content, &blog.Excerpt, &blog.Tag, &blog.Image, &blog.AuthorID,
		&blog.CreatedAt, &blog.UpdatedAt, &blog.Version, &name, &photoURL)
	if err != nil {
		return nil, common.DBError(err)
	}

	if blog.AuthorID.Valid {
		blog.Author = &Author{ID: blog.AuthorID.UUID, Name: name.String, PhotoURL: photoURL.String}
	}

	return &blog, nil
}

const summaryColumns = `
	b.id, b.title, b.slug, b.excerpt, b.tag, b.image, b.author_id, b.created_at, b.updated_at,
	(SELECT COUNT(*) FROM likes l WHERE l.blog_id = b.id),
	(SELECT COUNT(*) FROM comments c WHERE c.blog_id = b.id)`

func scanSummaries(rows *sql.Rows) ([]BlogSummary, error) {
	defer rows.Close()

	blogs := []BlogSummary{}
	for rows.Next() {
		var b BlogSummary
		err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Tag, &b.Image, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
			&b.LikeCount, &b.CommentCount)
		if err != nil {
			return nil, common.DBError(err)
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return blogs, nil
}

// list returns a page of blogs, newest first. The id tie-break keeps pages stable when
// timestamps collide. An empty tag disables the filter.
func (m *BlogModel) list(ctx context.Context, tag string, limit, offset int) ([]BlogSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM blogs b
		WHERE ($1 = '' OR b.tag = $1)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, tag, limit, offset)
	if err != nil {
		return nil, common.DBError(err)
	}

	return scanSummaries(rows)
}

func (m *BlogModel) related(ctx context.Context, tag string, exclude uuid.UUID, limit int) ([]BlogSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM blogs b
		WHERE b.tag = $1 AND b.id <> $2
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $3`

	rows, err := m.db.QueryContext(ctx, query, tag, exclude, limit)
	if err != nil {
		return nil, common.DBError(err)
	}

	return scanSummaries(rows)
}

// update writes the mutable fields. The version check turns a concurrent update into ErrEditConflict.
func (m *BlogModel) update(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, excerpt = $3, tag = $4, image = $5,
			updated_at = clock_timestamp(), version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING updated_at, version`

	args := []any{blog.Title, blog.Content, blog.Excerpt, blog.Tag, blog.Image, blog.ID, blog.Version}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.UpdatedAt, &blog.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return common.DBError(err)
		}
	}

	return nil
}

// deleteBySlug removes the blog. Comments, likes and bookmarks go with it through ON DELETE CASCADE.
func (m *BlogModel) deleteBySlug(ctx context.Context, slug string) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM blogs WHERE lower(slug) = lower($1)`, slug)
	if err != nil {
		return common.DBError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *BlogModel) categories(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT DISTINCT tag FROM blogs WHERE tag <> '' ORDER BY tag`)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, common.DBError(err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return tags, nil
}

func (m *BlogModel) sitemap(ctx context.Context) ([]SitemapEntry, error) {
	query := `
		SELECT slug, updated_at
		FROM blogs
		ORDER BY updated_at DESC, id DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	entries := []SitemapEntry{}
	for rows.Next() {
		var e SitemapEntry
		if err := rows.Scan(&e.Slug, &e.UpdatedAt); err != nil {
			return nil, common.DBError(err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return entries, nil
}

func (m *BlogModel) count(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&n)
	if err != nil {
		return 0, common.DBError(err)
	}

	return n, nil
}

// timeline counts blogs per UTC creation day, oldest day first.
func (m *BlogModel) timeline(ctx context.Context) ([]DailyCount, error) {
	query := `
		SELECT to_char(date_trunc('day', created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS day, COUNT(*)
		FROM blogs
		GROUP BY day
		ORDER BY day`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	counts := []DailyCount{}
	for rows.Next() {
		var c DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, common.DBError(err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return counts, nil
}
