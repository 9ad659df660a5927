package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/api/dto"
	"github.com/spec-kit/scholar-portal/internal/auth"
	"github.com/spec-kit/scholar-portal/internal/service"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// StudentHandler exposes profile endpoints for the authenticated student.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// GetProfile handles GET /api/student/profile.
func (h *StudentHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing bearer token")
	}

	profile, err := h.students.GetProfile(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/student/update.
func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing bearer token")
	}

	var req dto.StudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	profile, err := h.students.SaveProfile(c.UserContext(), principal.User.ID, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
