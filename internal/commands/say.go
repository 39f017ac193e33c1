package commands

import (
	"context"
	"errors"

	"github.com/edasprometai/Orpheus-app/internal/speaker"
)

// SayCommand speaks the given text directly, bypassing the chat model.
type SayCommand struct {
	speaker *speaker.Speaker
}

// NewSayCommand creates a new SayCommand instance.
func NewSayCommand(s *speaker.Speaker) Command {
	return &SayCommand{speaker: s}
}

// Name returns the name of the command.
func (c *SayCommand) Name() string {
	return "say"
}

// Description returns the description of the command.
func (c *SayCommand) Description() string {
	return "Speak the given text with the current voice"
}

// Execute runs the command.
func (c *SayCommand) Execute(ctx context.Context, args string) (string, error) {
	if args == "" {
		return "", errors.New("usage: /say <text>")
	}

	if err := c.speaker.Speak(ctx, args); err != nil {
		if notice, ok := speaker.Describe(err); ok {
			return notice, nil
		}

		return "", err
	}

	return "", nil
}
