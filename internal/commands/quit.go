package commands

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// QuitCommand ends the session, same as closing the input with Ctrl-D.
type QuitCommand struct {
	logger     *zap.Logger
	shutdowner fx.Shutdowner
}

// NewQuitCommand creates a new QuitCommand instance.
func NewQuitCommand(logger *zap.Logger, shutdowner fx.Shutdowner) Command {
	return &QuitCommand{
		logger:     logger.Named("quit_command"),
		shutdowner: shutdowner,
	}
}

// Name returns the name of the command.
func (c *QuitCommand) Name() string {
	return "quit"
}

// Description returns the description of the command.
func (c *QuitCommand) Description() string {
	return "End the session"
}

// Execute runs the command.
func (c *QuitCommand) Execute(_ context.Context, _ string) (string, error) {
	c.logger.Info("Quit requested")

	if err := c.shutdowner.Shutdown(); err != nil {
		return "", err
	}

	return "Goodbye.", nil
}
