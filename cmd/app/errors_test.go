package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blognest/internal/blogservice"
	"github.com/sushihentaime/blognest/internal/common"
	"github.com/sushihentaime/blognest/internal/engagementservice"
	"github.com/sushihentaime/blognest/internal/userservice"
)

func TestServiceErrorResponse(t *testing.T) {
	app := &application{config: testConfig(), logger: newTestLogger()}

	statementTimeout := &pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"}

	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantBody    envelope
		wantNoLeaks string
	}{
		{
			name:       "Validation",
			err:        common.ValidationError{Errors: map[string]string{"title": "must be provided"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   envelope{"error": map[string]string{"title": "must be provided"}},
		},
		{
			name:       "Not Found",
			err:        engagementservice.ErrBlogNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   envelope{"error": "resource not found"},
		},
		{
			name:       "Forbidden",
			err:        common.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   envelope{"error": "you do not have permission to perform this action"},
		},
		{
			name:       "Duplicate Slug",
			err:        blogservice.ErrDuplicateSlug,
			wantStatus: http.StatusConflict,
			wantBody:   envelope{"error": blogservice.ErrDuplicateSlug.Error()},
		},
		{
			name:       "Edit Conflict",
			err:        blogservice.ErrEditConflict,
			wantStatus: http.StatusConflict,
			wantBody:   envelope{"error": blogservice.ErrEditConflict.Error()},
		},
		{
			name:       "Toggle Conflict",
			err:        engagementservice.ErrToggleConflict,
			wantStatus: http.StatusConflict,
			wantBody:   envelope{"error": engagementservice.ErrToggleConflict.Error()},
		},
		{
			name:       "Rejected Identity",
			err:        userservice.ErrInvalidIdentity,
			wantStatus: http.StatusUnauthorized,
			wantBody:   envelope{"error": "invalid authentication credentials"},
		},
		{
			name:        "Statement Timeout",
			err:         common.DBError(statementTimeout),
			wantStatus:  http.StatusGatewayTimeout,
			wantBody:    envelope{"error": "the request took too long to complete, please try again"},
			wantNoLeaks: "canceling statement",
		},
		{
			name:        "Deadline Exceeded",
			err:         fmt.Errorf("list blogs: %w", common.DBError(context.DeadlineExceeded)),
			wantStatus:  http.StatusGatewayTimeout,
			wantBody:    envelope{"error": "the request took too long to complete, please try again"},
			wantNoLeaks: "deadline",
		},
		{
			name:        "Internal",
			err:         errors.New(`pq: relation "secret_table" does not exist`),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    envelope{"error": "the server encountered a problem and could not process your request"},
			wantNoLeaks: "secret_table",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/blogs", nil)
			res := httptest.NewRecorder()

			app.serviceErrorResponse(res, req, tc.err)

			assert.Equal(t, tc.wantStatus, res.Code)
			assert.JSONEq(t, tc.wantBody.JSON(), res.Body.String())

			if tc.wantNoLeaks != "" {
				assert.NotContains(t, res.Body.String(), tc.wantNoLeaks)
			}
		})
	}
}

func TestServiceErrorResponseClientCanceled(t *testing.T) {
	app := &application{config: testConfig(), logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/v1/blogs", nil)
	res := httptest.NewRecorder()

	app.serviceErrorResponse(res, req, common.DBError(context.Canceled))

	assert.Empty(t, res.Body.String())
	assert.False(t, res.Flushed)
	assert.Empty(t, res.Header().Get("Content-Type"))
}
