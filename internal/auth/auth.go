// Package auth verifies player tokens and carries the resolved player
// identity through the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

const (
	// DefaultLeeway tolerates clock skew between issuer and verifier
	DefaultLeeway = 30 * time.Second

	// Issuer is written into and required on every player token
	Issuer = "weapon-paints"

	bearerPrefix = "bearer "
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// Verifier signs and verifies HS256 player tokens whose subject is the player's SteamID64
type Verifier struct {
	key    []byte
	leeway time.Duration
}

// NewVerifier creates a verifier for the shared secret
func NewVerifier(secret string) *Verifier {
	return &Verifier{key: []byte(secret), leeway: DefaultLeeway}
}

// Issue signs a token for steamID valid for ttl
func (v *Verifier) Issue(steamID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   steamID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(v.key)
}

// Verify checks signature, expiry and issuer and returns the token subject
func (v *Verifier) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errUnexpectedSigningMethod
		}
		return v.key, nil
	},
		jwt.WithLeeway(v.leeway),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if claims.Subject == "" || len(claims.Subject) > domain.MaxSteamIDLength {
		return "", fmt.Errorf("%w: bad subject", domain.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(bearerPrefix):])
	return tok, tok != ""
}

type ctxKey struct{}

// WithPlayer returns a context carrying the authenticated player's SteamID
func WithPlayer(ctx context.Context, steamID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, steamID)
}

// PlayerFromContext returns the authenticated player's SteamID, if any
func PlayerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// CheckOwnership allows the call only when the authenticated player owns steamID
func CheckOwnership(ctx context.Context, steamID string) error {
	player, ok := PlayerFromContext(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if player != steamID {
		return domain.ErrForbidden
	}
	return nil
}
