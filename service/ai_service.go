package service

import (
	"context"

	"github.com/hitesh0303/union-coders/types"
)

// AIService is the hosted language-model provider behind the simplify and
// chat endpoints.
type AIService interface {
	// Generate returns the completion for a single self-contained prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat returns the reply to prompt given the prior conversation turns.
	Chat(ctx context.Context, prompt string, history []types.Message) (string, error)
}
