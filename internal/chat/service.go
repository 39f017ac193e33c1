package chat

import (
	"context"
	"errors"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
)

const defaultSystemPrompt = "You are a helpful voice assistant. Keep replies short and conversational; they will be spoken aloud."

// Service handles the core logic for chat turns: it maintains the rolling
// history, talks to the AI provider, and returns the assistant reply text.
type Service struct {
	logger       *zap.Logger
	provider     AIProvider
	history      *History
	model        string
	systemPrompt string
}

// NewService creates a new chat Service.
func NewService(logger *zap.Logger, cfg *config.Config, provider AIProvider, history *History) *Service {
	systemPrompt := cfg.Chat.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	return &Service{
		logger:       logger.Named("chat_service"),
		provider:     provider,
		history:      history,
		model:        cfg.Chat.Model,
		systemPrompt: systemPrompt,
	}
}

// Send submits one user turn and returns the assistant reply. The turn and
// its reply are appended to the history only after the provider succeeds, so
// a failed request does not poison later turns.
func (s *Service) Send(ctx context.Context, userText string) (string, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return "", errors.New("chat: prompt is empty")
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, 2+len(s.history.Messages()))
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleSystem,
		Content: s.systemPrompt,
	})
	messages = append(messages, s.history.Messages()...)
	userMessage := goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: userText,
	}
	messages = append(messages, userMessage)

	resp, err := s.provider.GetChatCompletion(ctx, s.model, messages)
	if err != nil {
		return "", err
	}

	reply := resp.Choices[0].Message.Content
	s.history.Append(userMessage)
	s.history.Append(goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleAssistant,
		Content: reply,
	})

	s.logger.Debug("Chat turn complete",
		zap.Int("historyLength", len(s.history.Messages())),
	)

	return reply, nil
}

// Reset clears the conversation history.
func (s *Service) Reset() {
	s.history.Reset()
	s.logger.Info("Conversation history cleared")
}
