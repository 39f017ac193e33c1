// Package openai provides OpenAI-compatible client infrastructure and Fx modules.
package openai

import (
	"errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
)

// Module provides OpenAI-compatible API clients.
var Module = fx.Module("openai",
	fx.Provide(
		NewChatClient,
		NewGenerationClient,
	),
)

// ChatClient is the client used for chat completions and speech
// transcription.
type ChatClient struct {
	*openai.Client
}

// GenerationClient is the client pointed at the Orpheus token-generation
// server. It speaks the same completion API but lives on a different base
// URL, usually a local llama.cpp or vLLM endpoint.
type GenerationClient struct {
	*openai.Client
}

// NewChatClient creates the client for the chat/transcription API.
func NewChatClient(cfg *config.Config, logger *zap.Logger) (*ChatClient, error) {
	if cfg.Chat.APIKey == "" {
		logger.Error("Chat API key is not configured")

		return nil, errors.New("chat API key (config.Chat.APIKey) is not configured")
	}

	clientCfg := openai.DefaultConfig(cfg.Chat.APIKey)
	if cfg.Chat.BaseURL != "" {
		clientCfg.BaseURL = cfg.Chat.BaseURL
	}

	logger.Info("Chat client created", zap.String("baseURL", clientCfg.BaseURL))

	return &ChatClient{Client: openai.NewClientWithConfig(clientCfg)}, nil
}

// NewGenerationClient creates the client for the TTS token-generation server.
func NewGenerationClient(cfg *config.Config, logger *zap.Logger) (*GenerationClient, error) {
	if cfg.TTS.BaseURL == "" {
		logger.Error("TTS base URL is not configured")

		return nil, errors.New("TTS base URL (config.TTS.BaseURL) is not configured")
	}

	// Local generation servers usually ignore the key but the client
	// requires one.
	apiKey := cfg.TTS.APIKey
	if apiKey == "" {
		apiKey = "not-needed"
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = cfg.TTS.BaseURL

	logger.Info("Generation client created", zap.String("baseURL", clientCfg.BaseURL))

	return &GenerationClient{Client: openai.NewClientWithConfig(clientCfg)}, nil
}
