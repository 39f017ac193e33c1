package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/edasprometai/Orpheus-app/internal/tts"
)

// VoiceCommand shows or switches the synthesis voice.
type VoiceCommand struct {
	tts *tts.Service
}

// NewVoiceCommand creates a new VoiceCommand instance.
func NewVoiceCommand(ttsService *tts.Service) Command {
	return &VoiceCommand{tts: ttsService}
}

// Name returns the name of the command.
func (c *VoiceCommand) Name() string {
	return "voice"
}

// Description returns the description of the command.
func (c *VoiceCommand) Description() string {
	return "Show or switch the synthesis voice"
}

// Execute runs the command.
func (c *VoiceCommand) Execute(_ context.Context, args string) (string, error) {
	if args == "" {
		return fmt.Sprintf("Current voice: %s\nAvailable voices: %s",
			c.tts.Voice(), strings.Join(tts.Voices, ", ")), nil
	}

	if err := c.tts.SetVoice(args); err != nil {
		return fmt.Sprintf("Unknown voice %q. Available voices: %s",
			args, strings.Join(tts.Voices, ", ")), nil
	}

	return fmt.Sprintf("Voice switched to %s.", args), nil
}
