package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scholar-portal/internal/config"
	"github.com/spec-kit/scholar-portal/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		JWTAlgorithm:          "HS256",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	}
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())

	token, exp, err := tm.GenerateToken("user-123", domain.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())

	// Sign an already-expired token with the same secret and method.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "u1",
		Role:   domain.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenStr, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_Tampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	token, _, err := tm.GenerateToken("u2", domain.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Mutate the payload segment; the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = tm.ParseToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	token, _, err := tm.GenerateToken("u3", domain.RoleStudent)
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTSecret = "a-different-secret"

	_, err = NewTokenManager(other).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_AlgorithmMismatch(t *testing.T) {
	t.Parallel()

	hs512 := testAuthConfig()
	hs512.JWTAlgorithm = "HS512"
	token, _, err := NewTokenManager(hs512).GenerateToken("u4", domain.RoleStudent)
	require.NoError(t, err)

	_, err = NewTokenManager(testAuthConfig()).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())

	for _, tokenStr := range []string{"", "not.a.jwt", "garbage"} {
		_, err := tm.ParseToken(tokenStr)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tokenStr)
	}
}

func TestNewTokenManager_UnknownAlgorithmFallsBack(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTAlgorithm = "RS256" // asymmetric methods are not supported

	tm := NewTokenManager(cfg)
	token, _, err := tm.GenerateToken("u5", domain.RoleStudent)
	require.NoError(t, err)

	claims, err := NewTokenManager(testAuthConfig()).ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u5", claims.UserID)
}
