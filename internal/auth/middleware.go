package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/repository"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

const principalKey = "auth_principal"

// CookieName is the auth cookie set alongside the JSON token on
// register/login. Protected routes accept either the cookie or a bearer
// header; resolution is identical once the raw string is extracted.
const CookieName = "access_token"

// Principal represents the authenticated caller. Only public user fields are
// ever serialized from it.
type Principal struct {
	User *domain.User
	Role domain.Role
}

// AuthMiddleware validates tokens and resolves the caller's identity record.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Token failures map to
// 401; a valid token whose subject has since been deleted maps to 404, which
// internally is tracked as a distinct unknown-subject case.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	raw := TokenFromRequest(c)
	if raw == "" {
		return apperrors.NewUnauthorized("missing bearer token")
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewTokenExpired()
		}
		return apperrors.NewTokenInvalid()
	}

	user, err := m.users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperrors.NewUnknownSubject()
		case errors.Is(err, repository.ErrStoreUnavailable):
			return apperrors.NewStoreUnavailable(err)
		default:
			return apperrors.MapError(err)
		}
	}

	c.Locals(principalKey, &Principal{User: user, Role: user.Role})
	return c.Next()
}

// TokenFromRequest extracts the raw token from the Authorization header or,
// failing that, the auth cookie. A non-bearer Authorization header does not
// block the cookie path.
func TokenFromRequest(c *fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(CookieName)
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
