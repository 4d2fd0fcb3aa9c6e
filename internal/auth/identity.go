// Package auth resolves who is calling and decides whether they hold one of
// the Discord roles allowed to submit reports.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Headers set by the hosting proxy for a logged-in user.
const (
	HeaderUserID    = "X-Replit-User-Id"
	HeaderUserName  = "X-Replit-User-Name"
	HeaderUserRoles = "X-Replit-User-Roles"
)

var (
	ErrMissingIdentity = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Identity is the authenticated caller. UserID is their Discord user ID.
type Identity struct {
	UserID   string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	// Signed is set when the roles came from a verified token rather than
	// unsigned proxy headers.
	Signed   bool     `json:"-"`
}

// Resolver extracts the caller's identity from a request.
type Resolver interface {
	Resolve(r *http.Request) (*Identity, error)
}

// HeaderResolver trusts the identity headers set by the hosting proxy.
type HeaderResolver struct{}

// Resolve reads the X-Replit-User-* headers.
func (HeaderResolver) Resolve(r *http.Request) (*Identity, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return nil, ErrMissingIdentity
	}

	username := strings.TrimSpace(r.Header.Get(HeaderUserName))
	if username == "" {
		username = "Unknown"
	}

	return &Identity{
		UserID:   userID,
		Username: username,
		Roles:    ParseRoles(r.Header.Get(HeaderUserRoles)),
	}, nil
}

// Claims are the JWT claims of an identity token. The subject is the Discord
// user ID.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenResolver validates HS256 bearer tokens signed with a shared secret.
type TokenResolver struct {
	secretKey []byte
}

// NewTokenResolver creates a resolver for tokens signed with secret.
func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{secretKey: []byte(secret)}
}

// Issue signs a token for id that expires after ttl.
func (t *TokenResolver) Issue(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name:  id.Username,
		Roles: id.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// Resolve validates the Authorization bearer token.
func (t *TokenResolver) Resolve(r *http.Request) (*Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingIdentity
	}
	scheme, tokenStr, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), claims,
		func(token *jwt.Token) (interface{}, error) {
			return t.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	username := claims.Name
	if username == "" {
		username = "Unknown"
	}
	return &Identity{
		UserID:   claims.Subject,
		Username: username,
		Roles:    claims.Roles,
		Signed:   true,
	}, nil
}

// ParseRoles splits a comma-separated role list, dropping blanks.
func ParseRoles(s string) []string {
	roles := []string{}
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

type contextKey struct{}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by the gate, if any.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok
}
