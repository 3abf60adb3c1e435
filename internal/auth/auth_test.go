package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

const (
	testSecret  = "test-secret-with-enough-entropy"
	testSteamID = "76561198000000001"
)

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := NewVerifier(testSecret)

	tok, err := v.Issue(testSteamID, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testSteamID, got)
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier(testSecret)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   testSteamID,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"

	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong key", sign(jwt.SigningMethodHS256, []byte("other-secret"), valid)},
		{"other HMAC size", sign(jwt.SigningMethodHS512, []byte(testSecret), valid)},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid)},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"other issuer", sign(jwt.SigningMethodHS256, []byte(testSecret), otherIssuer)},
		{"no subject", sign(jwt.SigningMethodHS256, []byte(testSecret), noSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer   abc", "abc", true},
		{"  BEARER abc  ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.want, got, "header %q", tt.header)
	}
}

func TestCheckOwnership(t *testing.T) {
	assert.ErrorIs(t, CheckOwnership(context.Background(), testSteamID), domain.ErrUnauthorized)

	ctx := WithPlayer(context.Background(), testSteamID)
	assert.NoError(t, CheckOwnership(ctx, testSteamID))
	assert.ErrorIs(t, CheckOwnership(ctx, "76561198000000002"), domain.ErrForbidden)

	player, ok := PlayerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, testSteamID, player)

	_, ok = PlayerFromContext(WithPlayer(context.Background(), ""))
	assert.False(t, ok)
}
