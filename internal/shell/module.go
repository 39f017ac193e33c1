package shell

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/chat"
	"github.com/edasprometai/Orpheus-app/internal/commands"
	"github.com/edasprometai/Orpheus-app/internal/speaker"
)

// Module provides the terminal chat surface.
var Module = fx.Module("shell",
	fx.Provide(NewShellProvider),
)

// NewShellProvider creates the Shell on the process's stdin/stdout.
func NewShellProvider(logger *zap.Logger, chatService *chat.Service, s *speaker.Speaker, registry *commands.Registry) *Shell {
	return NewShell(logger, chatService, s, registry, os.Stdin, os.Stdout)
}
