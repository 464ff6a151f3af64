package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message         string `json:"message"`
	DocumentContent string `json:"document_content,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
