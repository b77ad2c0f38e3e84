package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const GoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var (
	ErrInvalidIdentity = errors.New("identity provider rejected the token")
)

// IdentityVerifier exchanges a provider access token for the identity it belongs to.
type IdentityVerifier interface {
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}

// GoogleVerifier asks the OpenID userinfo endpoint who owns the access token.
type GoogleVerifier struct {
	userInfoURL string
	base        *http.Client
}

func NewGoogleVerifier(userInfoURL string) *GoogleVerifier {
	if userInfoURL == "" {
		userInfoURL = GoogleUserInfoURL
	}

	return &GoogleVerifier{userInfoURL: userInfoURL, base: http.DefaultClient}
}

type googleUserInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

func (g *GoogleVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach identity provider: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidIdentity
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity provider returned status %d", res.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&info); err != nil {
		return nil, fmt.Errorf("could not decode identity: %w", err)
	}

	if info.Email == "" || !info.EmailVerified {
		return nil, ErrInvalidIdentity
	}

	return &Identity{
		Name:     info.Name,
		Email:    info.Email,
		PhotoURL: info.Picture,
	}, nil
}
