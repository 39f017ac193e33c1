package player

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	pkgaudio "github.com/edasprometai/Orpheus-app/pkg/audio"
)

// WAVSink writes every clip to a timestamped WAV file in a directory,
// mirroring the temp-file bookkeeping of desktop chat demos. It remembers
// the last written path so the user can pin a clip somewhere permanent.
type WAVSink struct {
	logger *zap.Logger
	dir    string

	mu       sync.Mutex
	lastPath string
}

// NewWAVSink creates a WAVSink writing into dir, which is created if
// missing. An empty dir falls back to a per-run temp directory.
func NewWAVSink(logger *zap.Logger, dir string) (*WAVSink, error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "orpheus-clips-")
		if err != nil {
			return nil, fmt.Errorf("player: create temp clip dir: %w", err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("player: create clip dir: %w", err)
	}

	return &WAVSink{
		logger: logger.Named("wav_sink"),
		dir:    dir,
	}, nil
}

// Play writes the clip as a WAV file. It satisfies Player so the shell can
// run with file output only when no audio device is wanted.
func (s *WAVSink) Play(_ context.Context, samples []int16, sampleRate int) error {
	path := filepath.Join(s.dir, fmt.Sprintf("clip-%d.wav", time.Now().UnixNano()))

	if err := pkgaudio.WriteWAVFile(path, samples, sampleRate); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastPath = path
	s.mu.Unlock()

	s.logger.Info("Wrote clip", zap.String("path", path))

	return nil
}

// LastPath returns the most recently written clip path, if any.
func (s *WAVSink) LastPath() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastPath, s.lastPath != ""
}

// Save copies the most recent clip to dst.
func (s *WAVSink) Save(dst string) error {
	path, ok := s.LastPath()
	if !ok {
		return fmt.Errorf("player: no clip has been synthesized yet")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("player: read last clip: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("player: save clip: %w", err)
	}

	s.logger.Info("Saved clip", zap.String("from", path), zap.String("to", dst))

	return nil
}
