package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/events"
	"github.com/spec-kit/scholar-portal/internal/repository"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// InstitutionService manages registered institutions.
type InstitutionService struct {
	institutions repository.InstitutionRepository
	dispatcher   events.Dispatcher
}

// NewInstitutionService builds the service.
func NewInstitutionService(institutions repository.InstitutionRepository, dispatcher events.Dispatcher) *InstitutionService {
	return &InstitutionService{institutions: institutions, dispatcher: dispatcher}
}

// Create registers a new institution.
func (s *InstitutionService) Create(ctx context.Context, inst *domain.Institution) (*domain.Institution, error) {
	if err := validateInstitution(inst); err != nil {
		return nil, err
	}

	if err := s.institutions.Create(ctx, inst); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, apperrors.NewConflict("institution code already registered", map[string]any{"code": inst.Code})
		}
		return nil, mapStoreError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInstitutionCreated,
			Timestamp: time.Now(),
			Payload: events.InstitutionCreatedPayload{
				InstitutionID: inst.ID,
				Name:          inst.Name,
				Code:          inst.Code,
			},
		})
	}
	return inst, nil
}

// Get returns one institution by id.
func (s *InstitutionService) Get(ctx context.Context, id string) (*domain.Institution, error) {
	inst, err := s.institutions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("institution", nil)
		}
		return nil, mapStoreError(err)
	}
	return inst, nil
}

// List returns all institutions.
func (s *InstitutionService) List(ctx context.Context) ([]*domain.Institution, error) {
	institutions, err := s.institutions.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return institutions, nil
}

// Update replaces an institution's fields.
func (s *InstitutionService) Update(ctx context.Context, id string, inst *domain.Institution) (*domain.Institution, error) {
	if err := validateInstitution(inst); err != nil {
		return nil, err
	}

	inst.ID = id
	if err := s.institutions.Update(ctx, inst); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NewNotFound("institution", nil)
		case errors.Is(err, repository.ErrDuplicateCode):
			return nil, apperrors.NewConflict("institution code already registered", map[string]any{"code": inst.Code})
		default:
			return nil, mapStoreError(err)
		}
	}
	return inst, nil
}

func validateInstitution(inst *domain.Institution) error {
	details := map[string]any{}
	if strings.TrimSpace(inst.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(inst.Code) == "" {
		details["code"] = "required"
	}
	if strings.TrimSpace(inst.ContactPersonName) == "" {
		details["contact_person_name"] = "required"
	}
	if strings.TrimSpace(inst.ContactPersonMobile) == "" {
		details["contact_person_mobile"] = "required"
	}
	if strings.TrimSpace(inst.ContactPersonEmail) == "" {
		details["contact_person_email"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewInvalidInput("invalid institution data", details)
	}
	return nil
}
