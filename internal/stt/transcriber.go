// Package stt provides the speech-to-text boundary: a capability interface
// over the remote transcription endpoint so the rest of the application can
// be tested with deterministic stand-ins.
package stt

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
	"github.com/edasprometai/Orpheus-app/internal/openai"
)

const defaultModel = "whisper-1"

// Transcriber converts a recorded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// NewTranscriber creates a Transcriber backed by the OpenAI-compatible
// transcription endpoint.
func NewTranscriber(logger *zap.Logger, cfg *config.Config, client *openai.ChatClient) Transcriber {
	model := cfg.STT.Model
	if model == "" {
		model = defaultModel
	}

	return &apiTranscriber{
		logger: logger.Named("transcriber"),
		client: client,
		model:  model,
	}
}

type apiTranscriber struct {
	logger *zap.Logger
	client *openai.ChatClient
	model  string
}

// Transcribe uploads the audio file and returns the recognized text.
func (t *apiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Info("Transcribing audio file", zap.String("path", audioPath))

	resp, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
	})
	if err != nil {
		t.logger.Error("Transcription request failed", zap.Error(err))

		return "", fmt.Errorf("stt: transcription failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	t.logger.Info("Transcription complete", zap.Int("textLength", len(text)))

	return text, nil
}
