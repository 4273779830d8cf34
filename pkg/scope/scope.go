package scope

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clinic-assistant/internal/model"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("token subject missing")
)

// Payload is the identity carried in an access token.
type Payload struct {
	UserID   string
	Username string
	Role     string
}

// Scope converts the payload into a use-case scope.
func (p Payload) Scope() model.Scope {
	return model.Scope{UserID: p.UserID, Username: p.Username, Role: model.ParseRole(p.Role)}
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 access tokens.
type Manager interface {
	Sign(p Payload, ttl time.Duration) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// New creates a token manager. An empty issuer disables the iss check.
func New(secret, issuer string) Manager {
	return &implManager{secret: []byte(secret), issuer: issuer, now: time.Now}
}

func (m *implManager) Sign(p Payload, ttl time.Duration) (string, error) {
	now := m.now()
	c := claims{
		Username: p.Username,
		Role:     p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return Payload{}, ErrMissingSubject
	}
	return Payload{UserID: sub, Username: c.Username, Role: c.Role}, nil
}

type scopeCtxKey struct{}

// SetScopeToContext stores the caller scope in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}
