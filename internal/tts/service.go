package tts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/vocoder"
	"github.com/edasprometai/Orpheus-app/pkg/audio"
	"github.com/edasprometai/Orpheus-app/pkg/snac"
)

// Voices the Orpheus models ship with. The first entry is the default.
var Voices = []string{"tara", "leah", "jess", "leo", "dan", "mia", "zac", "zoe"}

// Tagged synthesis outcomes. Callers branch on these to present a neutral
// "no audio" message instead of an error where appropriate.
var (
	// ErrNoSpeechTokens means generation produced no audio markers in the
	// valid id range. A normal outcome, not a failure.
	ErrNoSpeechTokens = errors.New("tts: no speech tokens in generated text")

	// ErrNoValidFrames means tokens were present but no 7-token group
	// satisfied the layer ordering, or too few tokens arrived to form one.
	ErrNoValidFrames = errors.New("tts: no valid audio frames")
)

// Clip is synthesized speech: 16-bit mono PCM and its sample rate, directly
// acceptable to a WAV writer or playback sink without further scaling.
type Clip struct {
	SampleRate int
	Samples    []int16
}

// Service synthesizes speech clips. Each Synthesize call is self-contained;
// only the current voice and the clip cache are shared across calls.
type Service struct {
	logger    *zap.Logger
	generator TokenGenerator
	decoder   vocoder.Decoder
	cache     *ClipCache

	mu    sync.RWMutex
	voice string
}

// NewService creates a tts Service. decoder may be nil, in which case every
// synthesis reports vocoder.ErrUnavailable after validation.
func NewService(logger *zap.Logger, generator TokenGenerator, decoder vocoder.Decoder, cache *ClipCache, voice string) *Service {
	if voice == "" {
		voice = Voices[0]
	}

	return &Service{
		logger:    logger.Named("tts_service"),
		generator: generator,
		decoder:   decoder,
		cache:     cache,
		voice:     voice,
	}
}

// Voice returns the currently selected voice.
func (s *Service) Voice() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.voice
}

// SetVoice switches the synthesis voice. Unknown names are rejected.
func (s *Service) SetVoice(name string) error {
	for _, v := range Voices {
		if v == name {
			s.mu.Lock()
			s.voice = name
			s.mu.Unlock()

			return nil
		}
	}

	return fmt.Errorf("tts: unknown voice %q", name)
}

// Synthesize produces a speech clip for text with the current voice. Results
// are cached per (voice, text); a hit skips both generation and decode.
func (s *Service) Synthesize(ctx context.Context, text string) (*Clip, error) {
	voice := s.Voice()

	if clip, ok := s.cache.Get(voice, text); ok {
		s.logger.Debug("Clip cache hit", zap.String("voice", voice))

		return clip, nil
	}

	raw, err := s.generator.GenerateSpeechTokens(ctx, voice, text)
	if err != nil {
		return nil, err
	}

	clip, err := s.decodeTokenText(ctx, raw)
	if err != nil {
		return nil, err
	}

	s.cache.Add(voice, text, clip)

	return clip, nil
}

// decodeTokenText runs the framing pipeline over raw generation output:
// extract, regroup, decode, package. Stage order matters — absence outcomes
// are decided before the vocoder is ever invoked.
func (s *Service) decodeTokenText(ctx context.Context, raw string) (*Clip, error) {
	tokens := snac.ExtractTokens(raw)
	if len(tokens) == 0 {
		s.logger.Info("Generated text carried no audio tokens")

		return nil, ErrNoSpeechTokens
	}

	layers := snac.RegroupFrames(tokens)
	if layers.Empty() {
		s.logger.Warn("No valid frames survived regrouping",
			zap.Int("tokens", len(tokens)),
		)

		return nil, ErrNoValidFrames
	}

	if s.decoder == nil {
		return nil, vocoder.ErrUnavailable
	}

	waveform, err := s.decoder.Decode(ctx, layers)
	if err != nil {
		s.logger.Error("Vocoder decode failed", zap.Error(err))

		return nil, fmt.Errorf("tts: decode failed: %w", err)
	}

	samples := audio.PackPCM16(waveform)
	s.logger.Info("Synthesized clip",
		zap.Int("frames", layers.Frames()),
		zap.Int("samples", len(samples)),
	)

	return &Clip{SampleRate: snac.SampleRate, Samples: samples}, nil
}
