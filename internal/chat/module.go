package chat

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
)

// Module provides chat service dependencies.
var Module = fx.Module("chat",
	fx.Provide(
		NewOpenAIProvider,
		NewHistoryProvider,
		NewService,
	),
)

// NewHistoryProvider creates a History with a config-derived turn limit.
func NewHistoryProvider(logger *zap.Logger, cfg *config.Config) *History {
	limit := cfg.Chat.HistorySize
	if limit <= 0 {
		logger.Warn("Chat HistorySize is not configured or is invalid, defaulting to 20",
			zap.Int("configuredSize", limit))
		limit = 20
	}

	return NewHistory(limit)
}
