package dto

// ChatRequest payload for the assistant passthrough.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse carries the formatted model reply.
type ChatResponse struct {
	Response string `json:"response"`
}
