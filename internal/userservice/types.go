package userservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

type tokenScope string

const (
	TokenScopeSession tokenScope = "session"

	SessionTokenTime  time.Duration = 7 * 24 * time.Hour
	IdentityCacheTime time.Duration = 5 * time.Minute
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m        *UserModel
	t        *TokenModel
	verifier IdentityVerifier
	c        *common.Cache
}

type UserModel struct {
	db *sql.DB
}

type TokenModel struct {
	db *sql.DB
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is what the external provider asserts about the caller.
type Identity struct {
	Name     string
	Email    string
	PhotoURL string
}

type Token struct {
	Plain  string     `json:"token"`
	Hash   []byte     `json:"-"`
	UserID uuid.UUID  `json:"-"`
	Expiry time.Time  `json:"expiry"`
	Scope  tokenScope `json:"-"`
}

// Session is returned on login.
type Session struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
	User   *User     `json:"user"`
}
