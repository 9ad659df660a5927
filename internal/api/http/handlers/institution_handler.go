package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/api/dto"
	"github.com/spec-kit/scholar-portal/internal/domain"
	"github.com/spec-kit/scholar-portal/internal/service"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// InstitutionHandler exposes institution management endpoints.
type InstitutionHandler struct {
	institutions *service.InstitutionService
}

// NewInstitutionHandler constructs handler.
func NewInstitutionHandler(institutions *service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutions: institutions}
}

// Create handles POST /api/institutions.
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var req dto.InstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	inst, err := h.institutions.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(inst)
}

// List handles GET /api/institutions.
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	institutions, err := h.institutions.List(c.UserContext())
	if err != nil {
		return err
	}
	if institutions == nil {
		institutions = []*domain.Institution{}
	}
	return c.JSON(institutions)
}

// Get handles GET /api/institutions/:id.
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	inst, err := h.institutions.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(inst)
}

// Update handles PUT /api/institutions/:id.
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	var req dto.InstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	inst, err := h.institutions.Update(c.UserContext(), c.Params("id"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(inst)
}
