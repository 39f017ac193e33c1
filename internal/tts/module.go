package tts

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
	"github.com/edasprometai/Orpheus-app/internal/vocoder"
)

// Module provides speech synthesis dependencies.
var Module = fx.Module("tts",
	fx.Provide(
		NewTokenGenerator,
		NewClipCacheProvider,
		NewServiceProvider,
	),
)

// NewClipCacheProvider creates a ClipCache with a config-derived size.
func NewClipCacheProvider(logger *zap.Logger, cfg *config.Config) (*ClipCache, error) {
	size := cfg.TTS.ClipCacheSize
	if size <= 0 {
		logger.Warn("TTS ClipCacheSize is not configured or is invalid, defaulting to 32",
			zap.Int("configuredSize", size))
		size = 32
	}

	return NewClipCache(size)
}

// NewServiceProvider creates the tts Service with the configured voice.
func NewServiceProvider(
	logger *zap.Logger,
	cfg *config.Config,
	generator TokenGenerator,
	decoder vocoder.Decoder,
	cache *ClipCache,
) *Service {
	return NewService(logger, generator, decoder, cache, cfg.TTS.Voice)
}
