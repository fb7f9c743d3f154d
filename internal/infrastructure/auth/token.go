package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated covers every token failure mode: bad signature,
// expired token, missing subject, wrong principal type, principal gone.
// Callers must not distinguish the sub-causes in responses.
var ErrUnauthenticated = errors.New("could not validate credentials")

// ErrForbidden indicates an authenticated principal acting outside its
// ownership or type scope.
var ErrForbidden = errors.New("not enough permissions")

// Claims carried by an access token. Type is "customer" or "admin";
// the remaining fields are display-only.
type Claims struct {
	UserType string `json:"type"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// PrincipalID decodes the numeric subject.
func (c *Claims) PrincipalID() (int, error) {
	if c.Subject == "" {
		return 0, ErrUnauthenticated
	}
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// Profile holds the display claims attached at login.
type Profile struct {
	Name     string
	Email    string
	Username string
	IsAdmin  bool
}

// TokenManager issues and parses HS256 access tokens. The secret is
// loaded once at startup and immutable for the process lifetime; token
// validity is stateless, there is no server-side token store and no
// revocation before expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given principal, expiring ttl from now.
func (m *TokenManager) Issue(principalID int, userType string, profile Profile) (string, error) {
	now := time.Now()
	claims := Claims{
		UserType: userType,
		Name:     profile.Name,
		Email:    profile.Email,
		Username: profile.Username,
		IsAdmin:  profile.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(principalID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the decoded claims.
// Any failure collapses to ErrUnauthenticated.
func (m *TokenManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing algorithm")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
