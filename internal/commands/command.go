// Package commands provides prefix-routed commands for the terminal chat
// surface and their Fx wiring.
package commands

import (
	"context"
)

// CommandPrefix marks an input line as a command instead of a chat turn.
const CommandPrefix = "/"

// Command defines the interface for prefix commands.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args string) (string, error)
}
