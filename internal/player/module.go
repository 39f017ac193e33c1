package player

import (
	"context"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
)

// Module provides the playback collaborators.
var Module = fx.Module("player",
	fx.Provide(
		NewWAVSinkProvider,
		NewPlayerProvider,
	),
)

// NewWAVSinkProvider creates the WAV file sink from config.
func NewWAVSinkProvider(logger *zap.Logger, cfg *config.Config) (*WAVSink, error) {
	return NewWAVSink(logger, cfg.Audio.SaveDir)
}

// NewPlayerProvider selects the playback device. With playback disabled the
// WAV sink doubles as the Player, so every clip still lands on disk.
func NewPlayerProvider(logger *zap.Logger, cfg *config.Config, sink *WAVSink, lc fx.Lifecycle) Player {
	if !cfg.Audio.Playback {
		logger.Info("Audio playback disabled, clips are written to disk only")

		return sink
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return portaudio.Initialize()
		},
		OnStop: func(ctx context.Context) error {
			return portaudio.Terminate()
		},
	})

	return NewPortAudioPlayer(logger)
}
