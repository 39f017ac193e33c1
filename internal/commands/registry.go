package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Registry routes command lines to their handlers.
type Registry struct {
	logger   *zap.Logger
	commands map[string]Command
}

// NewRegistry creates a Registry over the provided commands.
func NewRegistry(logger *zap.Logger, cmds []Command) *Registry {
	m := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		m[c.Name()] = c
	}

	return &Registry{
		logger:   logger.Named("command_registry"),
		commands: m,
	}
}

// IsCommand reports whether the input line should be dispatched rather than
// treated as a chat turn.
func (r *Registry) IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), CommandPrefix)
}

// Dispatch parses "/name args" and executes the matching command. Unknown
// names return the help text rather than an error; a typo should not look
// like a failure.
func (r *Registry) Dispatch(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), CommandPrefix))
	name, args, _ := strings.Cut(input, " ")
	name = strings.ToLower(name)
	args = strings.TrimSpace(args)

	cmd, ok := r.commands[name]
	if !ok {
		r.logger.Debug("Unknown command", zap.String("name", name))

		return fmt.Sprintf("Unknown command %q.\n%s", name, r.Help()), nil
	}

	r.logger.Info("Dispatching command",
		zap.String("name", name),
		zap.Int("argsLength", len(args)),
	)

	return cmd.Execute(ctx, args)
}

// Help renders the command list, sorted by name.
func (r *Registry) Help() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Available commands:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %s%s - %s", CommandPrefix, name, r.commands[name].Description())
	}

	return sb.String()
}
