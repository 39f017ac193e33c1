package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/edasprometai/Orpheus-app/internal/player"
)

// SaveCommand copies the most recently synthesized clip to a user path.
type SaveCommand struct {
	sink *player.WAVSink
}

// NewSaveCommand creates a new SaveCommand instance.
func NewSaveCommand(sink *player.WAVSink) Command {
	return &SaveCommand{sink: sink}
}

// Name returns the name of the command.
func (c *SaveCommand) Name() string {
	return "save"
}

// Description returns the description of the command.
func (c *SaveCommand) Description() string {
	return "Save the last spoken clip to the given file path"
}

// Execute runs the command.
func (c *SaveCommand) Execute(_ context.Context, args string) (string, error) {
	if args == "" {
		return "", errors.New("usage: /save <path>")
	}

	if err := c.sink.Save(args); err != nil {
		return "", err
	}

	return fmt.Sprintf("Saved last clip to %s.", args), nil
}
