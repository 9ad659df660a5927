package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/scholar-portal/internal/config"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

// The chatbot is scoped to DBT/Aadhaar guidance; the instruction is sent with
// every prompt so the upstream model refuses off-topic questions.
const chatSystemInstruction = "You are an assistant that only answers questions related to the Indian government's " +
	"Direct Benefit Transfer (DBT), Aadhaar, and Aadhaar-linked bank accounts. Do not answer anything outside this scope."

// ChatService forwards prompts to the Gemini generateContent endpoint and
// returns the formatted reply. It holds no conversation state.
type ChatService struct {
	cfg    config.GeminiConfig
	client *http.Client
	logger *zap.Logger
}

// NewChatService builds the service.
func NewChatService(cfg config.GeminiConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Ask forwards the prompt and returns the model's formatted reply. Upstream
// failures surface as an upstream-unavailable error; the upstream body is
// logged, never returned.
func (s *ChatService) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperrors.NewInvalidInput("prompt required", nil)
	}
	if s.cfg.APIKey == "" {
		return "", apperrors.NewUpstreamUnavailable("chat", errors.New("gemini api key not configured"))
	}

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: chatSystemInstruction}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", apperrors.MapError(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.Model, s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.MapError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamUnavailable("chat", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperrors.NewUpstreamUnavailable("chat", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("gemini call failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return "", apperrors.NewUpstreamUnavailable("chat", fmt.Errorf("status %d", resp.StatusCode))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", apperrors.NewUpstreamUnavailable("chat", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewUpstreamUnavailable("chat", errors.New("empty response"))
	}

	return formatChatResponse(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// formatChatResponse normalizes model output for the frontend: trimmed,
// single newlines, emoji bullets.
func formatChatResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "\n\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "* ", "• ")
	return cleaned
}
