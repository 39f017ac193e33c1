// Package tts turns reply text into playable speech. The remote Orpheus
// generation server emits audio as `<custom_token_N>` markers; this package
// requests that stream, runs it through the snac framing pipeline, hands the
// validated layers to the vocoder, and packages the waveform as 16-bit PCM.
package tts

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
	"github.com/edasprometai/Orpheus-app/internal/openai"
)

// defaultMaxTokens bounds one synthesis request when the config does not.
// Roughly 14 seconds of audio at 7 tokens per frame.
const defaultMaxTokens = 4096

// TokenGenerator requests the raw token text for an utterance from the
// generation server. The returned string is ordinary completion output:
// audio markers interleaved with whatever else the model felt like emitting.
type TokenGenerator interface {
	GenerateSpeechTokens(ctx context.Context, voice, text string) (string, error)
}

// NewTokenGenerator creates a TokenGenerator backed by the OpenAI-compatible
// completion endpoint of the generation server.
func NewTokenGenerator(logger *zap.Logger, cfg *config.Config, client *openai.GenerationClient) TokenGenerator {
	return &completionGenerator{
		logger: logger.Named("token_generator"),
		cfg:    cfg,
		client: client,
	}
}

type completionGenerator struct {
	logger *zap.Logger
	cfg    *config.Config
	client *openai.GenerationClient
}

// GenerateSpeechTokens sends a completion request in the `voice: text`
// prompt format the Orpheus models are trained on.
func (g *completionGenerator) GenerateSpeechTokens(ctx context.Context, voice, text string) (string, error) {
	maxTokens := g.cfg.TTS.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := goopenai.CompletionRequest{
		Model:     g.cfg.TTS.Model,
		Prompt:    fmt.Sprintf("%s: %s", voice, text),
		MaxTokens: maxTokens,
	}

	g.logger.Info("Requesting speech tokens",
		zap.String("voice", voice),
		zap.Int("textLength", len(text)),
		zap.Int("maxTokens", maxTokens),
	)

	resp, err := g.client.CreateCompletion(ctx, req)
	if err != nil {
		g.logger.Error("Generation request failed", zap.Error(err))

		return "", fmt.Errorf("tts: generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("tts: generation server returned no choices")
	}

	return resp.Choices[0].Text, nil
}
