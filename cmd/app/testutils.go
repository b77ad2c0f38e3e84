package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blognest/internal/accesspolicy"
	"github.com/sushihentaime/blognest/internal/blogservice"
	"github.com/sushihentaime/blognest/internal/common"
	"github.com/sushihentaime/blognest/internal/engagementservice"
	"github.com/sushihentaime/blognest/internal/mailservice"
	"github.com/sushihentaime/blognest/internal/userservice"
)

const (
	testAdminEmail = "admin@example.com"
	testAdminToken = "admin-provider-token"
	testUserToken  = "user-provider-token"
	testOtherToken = "other-provider-token"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

func testConfig() *Config {
	return &Config{
		Environment:    "testing",
		Version:        "1.0.0",
		AdminEmail:     testAdminEmail,
		TrustedOrigins: []string{"http://localhost:3000"},
		LimiterEnabled: false,
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApplication wires every service against throwaway PostgreSQL and RabbitMQ containers.
// The identity provider is replaced by a mock that knows testAdminToken and testUserToken.
func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)

	broker, err := common.NewMessageBroker(common.TestRabbitMQ(t))
	require.NoError(t, err)
	t.Cleanup(func() { broker.Close() })

	err = common.SetupContactExchange(broker)
	require.NoError(t, err)

	verifier := new(userservice.MockVerifier)
	verifier.On("Verify", testAdminToken).Return(&userservice.Identity{Name: "Admin", Email: testAdminEmail}, nil)
	verifier.On("Verify", testUserToken).Return(&userservice.Identity{Name: "Reader", Email: "reader@example.com"}, nil)
	verifier.On("Verify", testOtherToken).Return(&userservice.Identity{Name: "Other", Email: "other@example.com"}, nil)
	verifier.On("Verify", "bad-provider-token").Return(nil, userservice.ErrInvalidIdentity)

	cfg := testConfig()
	policy := accesspolicy.New(cfg.AdminEmail)
	engagement := engagementservice.NewEngagementService(db)

	app := &application{
		config:            cfg,
		logger:            newTestLogger(),
		policy:            policy,
		userService:       userservice.NewUserService(db, verifier, nil),
		blogService:       blogservice.NewBlogService(db, engagement, policy),
		engagementService: engagement,
		contactService:    mailservice.NewContactService(broker),
		broker:            broker,
	}

	return app, db
}

// login opens a session for the identity behind providerToken and returns the session token and user.
func login(t *testing.T, app *application, providerToken string) (string, *userservice.User) {
	session, err := app.userService.Login(context.Background(), providerToken)
	require.NoError(t, err)

	return session.Token, session.User
}

func (ts *testServer) do(t *testing.T, method, path string, token string, payload any) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodGet, path, token, nil)
}

func (ts *testServer) post(t *testing.T, path string, token string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPost, path, token, payload)
}

func (ts *testServer) put(t *testing.T, path string, token string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPut, path, token, payload)
}

func (ts *testServer) delete(t *testing.T, path string, token string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodDelete, path, token, nil)
}
