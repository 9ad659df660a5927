package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/repository"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// StudentService reads and saves scholarship profiles for the authenticated
// student.
type StudentService struct {
	students repository.StudentRepository
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// GetProfile returns the caller's profile.
func (s *StudentService) GetProfile(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	profile, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, mapStoreError(err)
	}
	return profile, nil
}

// SaveProfile upserts the caller's profile. The profile is always written
// under the authenticated user's id regardless of what the body claims.
func (s *StudentService) SaveProfile(ctx context.Context, userID string, profile *domain.StudentProfile) (*domain.StudentProfile, error) {
	details := map[string]any{}
	if strings.TrimSpace(profile.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(profile.Email) == "" {
		details["email"] = "required"
	}
	if strings.TrimSpace(profile.Phone) == "" {
		details["phone"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewInvalidInput("invalid profile data", details)
	}

	profile.UserID = userID
	if err := s.students.Upsert(ctx, profile); err != nil {
		return nil, mapStoreError(err)
	}
	return profile, nil
}
