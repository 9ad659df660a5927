package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/api/dto"
	"github.com/spec-kit/scholar-portal/internal/auth"
	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/service"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// AuthHandler exposes registration, login, and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	result, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	h.setAuthCookie(c, result.Token)
	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Message:   "Registration successful",
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidInput("email and password required", nil)
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, result.Token)
	return c.JSON(dto.AuthResponse{
		Message:   "Login successful",
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}

// Me handles GET /api/auth/me. The auth middleware has already resolved the
// principal; only public fields are serialized.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing bearer token")
	}
	return c.JSON(principal.User.Public())
}

// setAuthCookie mirrors the token into an HTTP-only cookie whose lifetime
// matches the token's.
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	ttl := h.auth.TokenManager().TTL()
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		MaxAge:   int(ttl / time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
