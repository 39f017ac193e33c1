package commands

import (
	"context"

	"github.com/edasprometai/Orpheus-app/internal/chat"
)

// ResetCommand clears the conversation history.
type ResetCommand struct {
	chat *chat.Service
}

// NewResetCommand creates a new ResetCommand instance.
func NewResetCommand(chatService *chat.Service) Command {
	return &ResetCommand{chat: chatService}
}

// Name returns the name of the command.
func (c *ResetCommand) Name() string {
	return "reset"
}

// Description returns the description of the command.
func (c *ResetCommand) Description() string {
	return "Clear the conversation history"
}

// Execute runs the command.
func (c *ResetCommand) Execute(_ context.Context, _ string) (string, error) {
	c.chat.Reset()

	return "Conversation history cleared.", nil
}
