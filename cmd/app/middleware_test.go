package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blognest/internal/userservice"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRecoverPanic(t *testing.T) {
	app := &application{config: testConfig(), logger: newTestLogger()}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	app.recoverPanic(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestEnableCORS(t *testing.T) {
	app := &application{config: testConfig(), logger: newTestLogger()}

	tests := []struct {
		name            string
		method          string
		origin          string
		preflight       bool
		wantAllowOrigin string
		wantMethods     bool
	}{
		{name: "Trusted Origin", method: http.MethodGet, origin: "http://localhost:3000", wantAllowOrigin: "http://localhost:3000"},
		{name: "Untrusted Origin", method: http.MethodGet, origin: "http://evil.example.com"},
		{name: "No Origin", method: http.MethodGet},
		{name: "Trusted Preflight", method: http.MethodOptions, origin: "http://localhost:3000", preflight: true, wantAllowOrigin: "http://localhost:3000", wantMethods: true},
		{name: "Untrusted Preflight", method: http.MethodOptions, origin: "http://evil.example.com", preflight: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			res := httptest.NewRecorder()

			app.enableCORS(http.HandlerFunc(okHandler)).ServeHTTP(res, req)

			assert.Equal(t, http.StatusOK, res.Code)
			assert.Equal(t, tt.wantAllowOrigin, res.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, res.Header().Get("Access-Control-Allow-Methods") != "")
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LimiterEnabled = true
	cfg.LimiterRPS = 1
	cfg.LimiterBurst = 2

	app := &application{config: cfg, logger: newTestLogger()}
	handler := app.rateLimit(http.HandlerFunc(okHandler))

	request := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:1002"))

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, request("10.0.0.2:1000"))
}

func TestAuthenticate(t *testing.T) {
	app, _ := newTestApplication(t)
	token, _ := login(t, app, testUserToken)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		wantAnonymous  bool
	}{
		{name: "No Authentication Header", expectedStatus: http.StatusOK, wantAnonymous: true},
		{name: "Malformed Authentication Header", authHeader: "Token abc", expectedStatus: http.StatusUnauthorized},
		{name: "Invalid Authentication Token", authHeader: "Bearer invalid-token", expectedStatus: http.StatusUnauthorized},
		{name: "Unknown Authentication Token", authHeader: "Bearer ABCDEFGHIJKLMNOPQRSTUVWXYZ", expectedStatus: http.StatusUnauthorized},
		{name: "Valid Authentication Token", authHeader: "Bearer " + token, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user *userservice.User

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user = app.getUserContext(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			res := httptest.NewRecorder()

			app.authenticate(handler).ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)

			if res.Code == http.StatusOK {
				assert.Equal(t, tt.wantAnonymous, user.IsAnonymous())
			} else {
				assert.Equal(t, "Bearer", res.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app := &application{config: testConfig(), logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = app.createUserContext(req, &userservice.AnonymousUser)
	res := httptest.NewRecorder()

	app.requireAuthUser(okHandler).ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = app.createUserContext(req, &userservice.User{Email: "reader@example.com"})
	res = httptest.NewRecorder()

	app.requireAuthUser(okHandler).ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}
