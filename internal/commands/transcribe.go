package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/edasprometai/Orpheus-app/internal/chat"
	"github.com/edasprometai/Orpheus-app/internal/speaker"
	"github.com/edasprometai/Orpheus-app/internal/stt"
)

// TranscribeCommand runs a full voice turn from a recorded audio file:
// transcribe, chat, speak the reply.
type TranscribeCommand struct {
	stt     stt.Transcriber
	chat    *chat.Service
	speaker *speaker.Speaker
}

// NewTranscribeCommand creates a new TranscribeCommand instance.
func NewTranscribeCommand(transcriber stt.Transcriber, chatService *chat.Service, s *speaker.Speaker) Command {
	return &TranscribeCommand{
		stt:     transcriber,
		chat:    chatService,
		speaker: s,
	}
}

// Name returns the name of the command.
func (c *TranscribeCommand) Name() string {
	return "transcribe"
}

// Description returns the description of the command.
func (c *TranscribeCommand) Description() string {
	return "Transcribe an audio file and continue the chat with its contents"
}

// Execute runs the command.
func (c *TranscribeCommand) Execute(ctx context.Context, args string) (string, error) {
	if args == "" {
		return "", errors.New("usage: /transcribe <audio file>")
	}

	text, err := c.stt.Transcribe(ctx, args)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "(no speech was recognized in that file)", nil
	}

	reply, err := c.chat.Send(ctx, text)
	if err != nil {
		return "", err
	}

	out := fmt.Sprintf("You said: %s\nAssistant: %s", text, reply)
	if err := c.speaker.Speak(ctx, reply); err != nil {
		if notice, ok := speaker.Describe(err); ok {
			return out + "\n" + notice, nil
		}

		return out, err
	}

	return out, nil
}
