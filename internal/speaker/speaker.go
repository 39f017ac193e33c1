// Package speaker ties speech synthesis to playback: one call takes reply
// text all the way to the configured audio sink.
package speaker

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/player"
	"github.com/edasprometai/Orpheus-app/internal/tts"
	"github.com/edasprometai/Orpheus-app/internal/vocoder"
)

// Module provides the Speaker.
var Module = fx.Module("speaker",
	fx.Provide(NewSpeaker),
)

// Speaker synthesizes text and plays the result.
type Speaker struct {
	logger *zap.Logger
	tts    *tts.Service
	player player.Player
	sink   *player.WAVSink
}

// NewSpeaker creates a Speaker.
func NewSpeaker(logger *zap.Logger, ttsService *tts.Service, p player.Player, sink *player.WAVSink) *Speaker {
	return &Speaker{
		logger: logger.Named("speaker"),
		tts:    ttsService,
		player: p,
		sink:   sink,
	}
}

// Speak synthesizes text with the current voice, archives the clip to the
// WAV sink, and plays it. Synthesis outcome errors pass through untouched
// so callers can translate them for the user.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	clip, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	// Archive first so the clip survives even if the audio device fails.
	// When playback is disabled the sink is the active player; don't write
	// the file twice.
	if _, sinkIsPlayer := s.player.(*player.WAVSink); !sinkIsPlayer {
		if err := s.sink.Play(ctx, clip.Samples, clip.SampleRate); err != nil {
			s.logger.Warn("Failed to archive clip", zap.Error(err))
		}
	}

	return s.player.Play(ctx, clip.Samples, clip.SampleRate)
}

// Describe translates a known synthesis outcome into a user-facing notice.
// Unknown errors return false and should be reported as failures.
func Describe(err error) (string, bool) {
	switch {
	case errors.Is(err, tts.ErrNoSpeechTokens):
		return "(no audio was generated for this reply)", true
	case errors.Is(err, tts.ErrNoValidFrames):
		return "(the generated audio was malformed and has been discarded)", true
	case errors.Is(err, vocoder.ErrUnavailable):
		return "(speech synthesis is unavailable: no vocoder is configured)", true
	default:
		return "", false
	}
}
