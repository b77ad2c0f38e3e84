package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConstraintHelpers(t *testing.T) {
	unique := &pq.Error{Code: pqUniqueViolation, Constraint: "blogs_slug_lower_idx"}
	fk := &pq.Error{Code: pqForeignKeyViolation, Constraint: "likes_blog_id_fkey"}

	assert.True(t, UniqueViolation(unique, "blogs_slug_lower_idx"))
	assert.True(t, UniqueViolation(fmt.Errorf("insert: %w", unique), "blogs_slug_lower_idx"))
	assert.False(t, UniqueViolation(unique, "users_email_key"))
	assert.False(t, UniqueViolation(fk, "likes_blog_id_fkey"))

	assert.True(t, ForeignKeyError(fk, "likes_blog_id_fkey"))
	assert.False(t, ForeignKeyError(unique, "likes_blog_id_fkey"))
	assert.False(t, ForeignKeyError(errors.New("boom"), "likes_blog_id_fkey"))
}

func TestDBError(t *testing.T) {
	other := errors.New("connection refused")

	testCases := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "nil", err: nil, wantIs: nil},
		{name: "no rows", err: sql.ErrNoRows, wantIs: ErrRecordNotFound},
		{name: "deadline", err: context.DeadlineExceeded, wantIs: ErrTimeout},
		{name: "query canceled", err: &pq.Error{Code: pqQueryCanceled}, wantIs: ErrTimeout},
		{name: "client gone", err: context.Canceled, wantIs: ErrCanceled},
		{name: "client gone wrapped", err: fmt.Errorf("scan: %w", context.Canceled), wantIs: ErrCanceled},
		{name: "other", err: other, wantIs: other},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DBError(tc.err)
			if tc.wantIs == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}
}

func TestDBErrorCanceledIsNotTimeout(t *testing.T) {
	assert.NotErrorIs(t, DBError(context.Canceled), ErrTimeout)
	assert.NotErrorIs(t, DBError(context.DeadlineExceeded), ErrCanceled)
}
