package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/api/dto"
	"github.com/spec-kit/scholar-portal/internal/service"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// ChatHandler exposes the DBT-guidance assistant passthrough.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Ask handles POST /api/gemini.
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	reply, err := h.chat.Ask(c.UserContext(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChatResponse{Response: reply})
}
