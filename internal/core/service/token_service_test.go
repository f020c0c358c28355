package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

var issuedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokens(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()
	svc, err := NewTokenService(TokenConfig{Secret: "s3cret", Algorithm: "HS256", TTL: time.Hour}, WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: issuedAt}
	svc := newTestTokens(t, clock)

	token, exp, err := svc.Issue("anna@example.org", 0)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), exp)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.org", claims.Subject)
	assert.Equal(t, exp, claims.ExpiresAt)
}

func TestTokenService_Expiry(t *testing.T) {
	clock := &fakeClock{t: issuedAt}
	svc := newTestTokens(t, clock)

	token, _, err := svc.Issue("anna@example.org", 30*time.Minute)
	require.NoError(t, err)

	clock.t = issuedAt.Add(30*time.Minute - time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.t = issuedAt.Add(30 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	clock.t = issuedAt.Add(30*time.Minute + time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := newTestTokens(t, &fakeClock{t: issuedAt})
	token, _, err := svc.Issue("anna@example.org", 0)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := range sig {
		flipped := append([]byte(nil), sig...)
		flipped[i] ^= 0x01
		forged := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(flipped)
		_, err := svc.Verify(forged)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "byte %d", i)
	}
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	svc := newTestTokens(t, &fakeClock{t: issuedAt})
	claims := jwt.RegisteredClaims{Subject: "anna@example.org", ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))}

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	require.NoError(t, err)
	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"wrong key":   otherKey,
		"wrong alg":   otherAlg,
		"missing exp": noExp,
		"alg none":    none,
		"garbage":     "not-a-token",
		"empty":       "",
	} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, name)
	}
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := NewTokenService(TokenConfig{Secret: "", TTL: time.Hour})
	assert.Error(t, err)
	_, err = NewTokenService(TokenConfig{Secret: "x", TTL: 0})
	assert.Error(t, err)
	_, err = NewTokenService(TokenConfig{Secret: "x", TTL: time.Hour, Algorithm: "RS256"})
	assert.Error(t, err)
	_, err = NewTokenService(TokenConfig{Secret: "x", TTL: time.Hour, Algorithm: "HS384"})
	assert.NoError(t, err)
}
