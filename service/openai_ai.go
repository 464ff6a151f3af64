package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/hitesh0303/union-coders/types"
)

var systemMessageLegalAssistant = openai.ChatCompletionMessage{
	Role:    openai.ChatMessageRoleSystem,
	Content: "You are a helpful legal assistant. You simplify legal documents and answer questions about them in clear, plain language.",
}

// OpenAIService talks to any OpenAI-compatible completion endpoint, which
// covers self-hosted model servers as well as the hosted API.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, []openai.ChatCompletionMessage{
		systemMessageLegalAssistant,
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

func (s *OpenAIService) Chat(ctx context.Context, prompt string, messages []types.Message) (string, error) {
	// Convert our Message type to OpenAI chat messages
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+2)
	openaiMessages = append(openaiMessages, systemMessageLegalAssistant)
	for _, msg := range messages {
		openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
			Role:    openaiRole(msg.Role),
			Content: msg.Content,
		})
	}
	openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
	return s.complete(ctx, openaiMessages)
}

func (s *OpenAIService) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: messages,
			Model:    s.model,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func openaiRole(role string) string {
	if role == types.RoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}
