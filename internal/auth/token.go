package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/scholar-portal/internal/config"
	"github.com/spec-kit/scholar-portal/internal/domain"
)

// Sentinel verification failures. Expiry is split out because the HTTP layer
// reports it differently from tampering.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenManager issues and validates JWT access tokens. The secret and signing
// method are fixed at construction; changing the secret invalidates every
// previously issued token.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager builds a manager from auth configuration. Unknown or
// non-HMAC algorithm names fall back to HS256.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		method: method,
		ttl:    cfg.AccessTokenTTL(),
	}
}

// Claims is the fixed token payload: subject id, role, and the registered
// issued-at/expiry window.
type Claims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a token for the user.
func (tm *TokenManager) GenerateToken(userID string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tm.method, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates the signature and expiry window and returns the
// claims. Returns ErrTokenExpired past the embedded expiry and
// ErrTokenInvalid for tampered, malformed, or wrongly signed tokens.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != tm.method {
			return nil, ErrTokenInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// TTL reports the configured token lifetime, used to align the auth cookie's
// max age with token expiry.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
