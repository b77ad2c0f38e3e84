package userservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

func NewUserService(db *sql.DB, verifier IdentityVerifier, c *common.Cache) *UserService {
	return &UserService{
		m:        NewUserModel(db),
		t:        NewTokenModel(db),
		verifier: verifier,
		c:        c,
	}
}

// Login verifies the provider token, upserts the user it identifies and opens a session.
func (s *UserService) Login(ctx context.Context, providerToken string) (*Session, error) {
	v := common.NewValidator()
	validateProviderToken(v, providerToken)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	identity, err := s.identity(ctx, providerToken)
	if err != nil {
		return nil, err
	}

	v = common.NewValidator()
	validateIdentity(v, identity)
	if !v.Valid() {
		return nil, ErrInvalidIdentity
	}

	user, err := s.m.upsert(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := s.t.createToken(ctx, user.ID, SessionTokenTime, TokenScopeSession)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token.Plain, Expiry: token.Expiry, User: user}, nil
}

// identity consults the cache before calling out to the provider.
func (s *UserService) identity(ctx context.Context, providerToken string) (*Identity, error) {
	key := common.CacheKeyIdentity(providerToken)

	if s.c != nil {
		if cached, ok := s.c.Get(key); ok {
			if identity, ok := cached.(*Identity); ok {
				return identity, nil
			}
		}
	}

	identity, err := s.verifier.Verify(ctx, providerToken)
	if err != nil {
		return nil, err
	}

	if s.c != nil {
		s.c.Set(key, identity, IdentityCacheTime)
	}

	return identity, nil
}

func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	v := common.NewValidator()
	ValidateToken(v, token)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.t.getUser(ctx, TokenScopeSession, hashToken(token))
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.m.getByID(ctx, id)
}

// Logout ends every session of the user.
func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.t.deleteAllForUser(ctx, userID, TokenScopeSession)
}

// PurgeExpiredSessions deletes expired session tokens and returns how many were removed.
func (s *UserService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.t.deleteExpired(ctx)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
