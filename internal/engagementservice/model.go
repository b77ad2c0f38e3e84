package engagementservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

var (
	ErrBlogNotFound   = fmt.Errorf("blog: %w", common.ErrRecordNotFound)
	ErrUserNotFound   = fmt.Errorf("user: %w", common.ErrRecordNotFound)
	ErrToggleConflict = errors.New("a concurrent request changed this state, try again")
)

func newEngagementModel(db *sql.DB) *EngagementModel {
	return &EngagementModel{db: db}
}

// pairFKError maps a foreign key violation on a (user_id, blog_id) table to the missing side.
func pairFKError(err error, table pairTable) error {
	switch {
	case common.ForeignKeyError(err, string(table)+"_blog_id_fkey"):
		return ErrBlogNotFound
	case common.ForeignKeyError(err, string(table)+"_user_id_fkey"):
		return ErrUserNotFound
	default:
		return common.DBError(err)
	}
}

// toggle flips the presence of the (userID, blogID) row in table and reports whether the
// row exists afterwards. The primary key on the pair is the only guard: a lost insert race
// is reported as ErrToggleConflict instead of being retried.
func (m *EngagementModel) toggle(ctx context.Context, table pairTable, userID, blogID uuid.UUID) (bool, error) {
	deleteQuery := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND blog_id = $2`, table)

	res, err := m.db.ExecContext(ctx, deleteQuery, userID, blogID)
	if err != nil {
		return false, common.DBError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if rows == 1 {
		return false, nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (user_id, blog_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, blog_id) DO NOTHING`, table)

	res, err = m.db.ExecContext(ctx, insertQuery, userID, blogID)
	if err != nil {
		return false, pairFKError(err, table)
	}

	rows, err = res.RowsAffected()
	if err != nil {
		return false, err
	}

	if rows == 0 {
		return false, ErrToggleConflict
	}

	return true, nil
}

func (m *EngagementModel) exists(ctx context.Context, table pairTable, userID, blogID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND blog_id = $2)`, table)

	var ok bool
	err := m.db.QueryRowContext(ctx, query, userID, blogID).Scan(&ok)
	if err != nil {
		return false, common.DBError(err)
	}

	return ok, nil
}

func (m *EngagementModel) listLikes(ctx context.Context, blogID uuid.UUID) ([]Like, error) {
	query := `
		SELECT user_id, blog_id, created_at
		FROM likes
		WHERE blog_id = $1
		ORDER BY created_at DESC, user_id DESC`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	likes := []Like{}
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.UserID, &l.BlogID, &l.CreatedAt); err != nil {
			return nil, common.DBError(err)
		}
		likes = append(likes, l)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return likes, nil
}

// listSavedBlogs returns the blogs a user has a row for in table, most recently saved first.
func (m *EngagementModel) listSavedBlogs(ctx context.Context, table pairTable, userID uuid.UUID) ([]SavedBlog, error) {
	query := fmt.Sprintf(`
		SELECT b.id, b.title, b.slug, b.excerpt, b.tag, b.image, s.created_at
		FROM %s s
		JOIN blogs b ON b.id = s.blog_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, b.id DESC`, table)

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	blogs := []SavedBlog{}
	for rows.Next() {
		var b SavedBlog
		if err := rows.Scan(&b.BlogID, &b.Title, &b.Slug, &b.Excerpt, &b.Tag, &b.Image, &b.SavedAt); err != nil {
			return nil, common.DBError(err)
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return blogs, nil
}

func (m *EngagementModel) insertComment(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (blog_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, c.BlogID, c.UserID, c.Content).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "comments_blog_id_fkey"):
			return ErrBlogNotFound
		case common.ForeignKeyError(err, "comments_user_id_fkey"):
			return ErrUserNotFound
		default:
			return common.DBError(err)
		}
	}

	return nil
}

const commentColumns = `c.id, c.blog_id, c.user_id, c.content, c.created_at, c.updated_at, u.name, u.photo_url`

func scanComment(row interface{ Scan(...any) error }) (*Comment, error) {
	var (
		c      Comment
		author CommentAuthor
	)

	err := row.Scan(&c.ID, &c.BlogID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt, &author.Name, &author.PhotoURL)
	if err != nil {
		return nil, common.DBError(err)
	}

	c.Author = &author
	return &c, nil
}

func (m *EngagementModel) getComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	c, err := scanComment(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.DBError(err)
	}

	return c, nil
}

func (m *EngagementModel) listComments(ctx context.Context, blogID uuid.UUID) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, common.DBError(err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, common.DBError(err)
	}

	return comments, nil
}

func (m *EngagementModel) updateComment(ctx context.Context, id uuid.UUID, content string) (*Comment, error) {
	query := `
		WITH updated AS (
			UPDATE comments
			SET content = $2, updated_at = clock_timestamp()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + commentColumns + `
		FROM updated c
		JOIN users u ON u.id = c.user_id`

	c, err := scanComment(m.db.QueryRowContext(ctx, query, id, content))
	if err != nil {
		return nil, common.DBError(err)
	}

	return c, nil
}

func (m *EngagementModel) deleteComment(ctx context.Context, id uuid.UUID) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
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
