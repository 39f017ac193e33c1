// Package chat provides the chat-completion service: a capability interface
// over the remote AI API plus conversation history handling.
package chat

import (
	"context"
	"errors"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
	"github.com/edasprometai/Orpheus-app/internal/openai"
)

// AIProvider defines the interface for interacting with an AI chat completion service.
type AIProvider interface {
	GetChatCompletion(ctx context.Context, model string, messages []goopenai.ChatCompletionMessage) (*goopenai.ChatCompletionResponse, error)
}

// NewOpenAIProvider creates a new OpenAI-based AIProvider implementation.
func NewOpenAIProvider(logger *zap.Logger, cfg *config.Config, client *openai.ChatClient) AIProvider {
	return &openAIProvider{
		logger: logger.Named("openai_provider"),
		cfg:    cfg,
		client: client,
	}
}

type openAIProvider struct {
	logger *zap.Logger
	cfg    *config.Config
	client *openai.ChatClient
}

// GetChatCompletion sends a chat completion request and returns the response.
func (oai *openAIProvider) GetChatCompletion(ctx context.Context, model string, messages []goopenai.ChatCompletionMessage) (*goopenai.ChatCompletionResponse, error) {
	oai.logger.Info("Sending request to chat API",
		zap.String("model", model),
		zap.Int("messageCount", len(messages)),
	)

	aiRequest := goopenai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	aiResponse, err := oai.client.CreateChatCompletion(ctx, aiRequest)
	if err != nil {
		oai.logger.Error("Failed to get response from chat API", zap.Error(err))

		return nil, err
	}

	if len(aiResponse.Choices) == 0 || aiResponse.Choices[0].Message.Content == "" {
		oai.logger.Warn("Chat API returned an empty response", zap.Any("aiResponse", aiResponse))

		return nil, errors.New("chat API returned empty response")
	}

	oai.logger.Info("Received response from chat API",
		zap.Int("promptTokens", aiResponse.Usage.PromptTokens),
		zap.Int("completionTokens", aiResponse.Usage.CompletionTokens),
		zap.Int("totalTokens", aiResponse.Usage.TotalTokens),
	)

	return &aiResponse, nil
}
