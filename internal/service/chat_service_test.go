package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/scholar-portal/internal/config"
	apperrors "github.com/spec-kit/scholar-portal/pkg/util"
)

func newChatTestServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		require.NotEmpty(t, req.Contents)

		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []struct {
					Content geminiContent `json:"content"`
				}{
					{Content: geminiContent{Parts: []geminiPart{{Text: reply}}}},
				},
			})
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestChatService(baseURL string) *ChatService {
	return NewChatService(config.GeminiConfig{
		APIKey:         "test-key",
		Model:          "gemini-1.5-flash",
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestChatService_Ask(t *testing.T) {
	t.Parallel()

	server := newChatTestServer(t, http.StatusOK, "  DBT stands for Direct Benefit Transfer.\n\n* Link Aadhaar\n* Seed bank account  ")
	svc := newTestChatService(server.URL)

	reply, err := svc.Ask(context.Background(), "What is DBT?")
	require.NoError(t, err)
	assert.Equal(t, "DBT stands for Direct Benefit Transfer.\n• Link Aadhaar\n• Seed bank account", reply)
}

func TestChatService_EmptyPrompt(t *testing.T) {
	t.Parallel()

	svc := newTestChatService("http://unused")

	_, err := svc.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", apperrors.ToDomainError(err).Code)
}

func TestChatService_UpstreamFailure(t *testing.T) {
	t.Parallel()

	server := newChatTestServer(t, http.StatusInternalServerError, "")
	svc := newTestChatService(server.URL)

	_, err := svc.Ask(context.Background(), "What is DBT?")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", domainErr.Code)
	// Upstream detail stays out of the client-facing message.
	assert.NotContains(t, domainErr.Message, "500")
}

func TestChatService_MissingAPIKey(t *testing.T) {
	t.Parallel()

	svc := NewChatService(config.GeminiConfig{Model: "gemini-1.5-flash", BaseURL: "http://unused"}, zap.NewNop())

	_, err := svc.Ask(context.Background(), "What is DBT?")
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", apperrors.ToDomainError(err).Code)
}

func TestFormatChatResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"collapses double newlines", "a\n\nb", "a\nb"},
		{"emoji bullets", "* one\n* two", "• one\n• two"},
		{"plain text untouched", "already clean", "already clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatChatResponse(tt.in))
		})
	}
}
