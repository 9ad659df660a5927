package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/scholar-portal/internal/auth"
	"github.com/spec-kit/scholar-portal/internal/config"
	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/events"
	"github.com/spec-kit/scholar-portal/internal/repository"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		dispatcher: dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg),
		bcryptCost: cfg.BcryptCost,
	}
}

// AuthResult is what both entry points hand back: a signed token and the
// public view of the account it names.
type AuthResult struct {
	User      domain.PublicUser
	Token     string
	ExpiresAt time.Time
}

// Register creates a new account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleStudent
	}

	// Pre-check for a friendlier failure; the unique index on email is the
	// actual guard against concurrent registration.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, mapStoreError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, mapStoreError(err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			Timestamp: time.Now(),
			Payload: events.UserRegisteredPayload{
				UserID: user.ID,
				Name:   user.Name,
				Email:  user.Email,
				Role:   user.Role,
			},
		})
	}
	return result, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error value so the response cannot reveal which
// addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, mapStoreError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	return s.issueToken(user)
}

// TokenManager exposes the underlying token manager for middleware and
// cookie-lifetime wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueToken(user *domain.User) (*AuthResult, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &AuthResult{User: user.Public(), Token: token, ExpiresAt: exp}, nil
}

func validateRegistration(name, email, password string) error {
	details := map[string]any{}
	if name == "" {
		details["name"] = "required"
	}
	if password == "" {
		details["password"] = "required"
	}
	if email == "" {
		details["email"] = "required"
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		details["email"] = "invalid"
	}
	if len(details) > 0 {
		return apperrors.NewInvalidInput("invalid registration data", details)
	}
	return nil
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return apperrors.NewStoreUnavailable(err)
	}
	return apperrors.MapError(err)
}
