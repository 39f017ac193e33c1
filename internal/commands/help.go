package commands

import (
	"context"
)

// HelpCommand lists the available commands.
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand creates a new HelpCommand instance. The registry is set
// afterwards to break the construction cycle between registry and command.
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{}
}

// SetRegistry wires the registry the command describes.
func (c *HelpCommand) SetRegistry(r *Registry) {
	c.registry = r
}

// Name returns the name of the command.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns the description of the command.
func (c *HelpCommand) Description() string {
	return "List the available commands"
}

// Execute runs the command.
func (c *HelpCommand) Execute(_ context.Context, _ string) (string, error) {
	return c.registry.Help(), nil
}
