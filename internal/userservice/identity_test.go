package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleVerifier(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"Test User","email":"reader@example.com","email_verified":true,"picture":"https://example.com/a.png"}`))
		case "Bearer unverified-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"Test User","email":"reader@example.com","email_verified":false}`))
		case "Bearer broken-token":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(ts.Close)

	v := NewGoogleVerifier(ts.URL)

	testCases := []struct {
		name        string
		token       string
		want        *Identity
		expectedErr error
		wantErr     bool
	}{
		{
			name:  "valid token",
			token: "good-token",
			want:  &Identity{Name: "Test User", Email: "reader@example.com", PhotoURL: "https://example.com/a.png"},
		},
		{
			name:        "unverified email",
			token:       "unverified-token",
			expectedErr: ErrInvalidIdentity,
			wantErr:     true,
		},
		{
			name:        "rejected token",
			token:       "bad-token",
			expectedErr: ErrInvalidIdentity,
			wantErr:     true,
		},
		{
			name:    "provider failure",
			token:   "broken-token",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := v.Verify(context.Background(), tc.token)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, identity)
				if tc.expectedErr != nil {
					assert.ErrorIs(t, err, tc.expectedErr)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, identity)
		})
	}
}

func TestNewGoogleVerifierDefaultURL(t *testing.T) {
	v := NewGoogleVerifier("")
	assert.Equal(t, GoogleUserInfoURL, v.userInfoURL)
}
