package events

import (
	"time"

	"github.com/spec-kit/scholar-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventInstitutionCreated EventType = "institution_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload. Carries only public identity fields.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// InstitutionCreatedPayload payload.
type InstitutionCreatedPayload struct {
	InstitutionID string `json:"institution_id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
}
