package player

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"
)

// framesPerBuffer is the blocking write chunk size. 1024 frames is ~43 ms
// at 24 kHz, small enough that cancellation stays responsive.
const framesPerBuffer = 1024

// PortAudioPlayer plays PCM through the default output device. A mutex
// serializes Play calls so overlapping clips do not fight over the device.
type PortAudioPlayer struct {
	logger *zap.Logger
	mu     sync.Mutex
}

// NewPortAudioPlayer creates a PortAudioPlayer. Initialize must have been
// called (the fx lifecycle hook in this package's Module does that).
func NewPortAudioPlayer(logger *zap.Logger) *PortAudioPlayer {
	return &PortAudioPlayer{logger: logger.Named("portaudio_player")}
}

// Play writes samples to the default output stream in fixed-size chunks,
// padding the final chunk with silence.
func (p *PortAudioPlayer) Play(ctx context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, &buf)
	if err != nil {
		return fmt.Errorf("player: open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("player: start stream: %w", err)
	}
	defer stream.Stop()

	p.logger.Debug("Playback started",
		zap.Int("samples", len(samples)),
		zap.Int("sampleRate", sampleRate),
	)

	for off := 0; off < len(samples); off += framesPerBuffer {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := copy(buf, samples[off:])
		for i := n; i < framesPerBuffer; i++ {
			buf[i] = 0
		}

		if err := stream.Write(); err != nil {
			return fmt.Errorf("player: write chunk: %w", err)
		}
	}

	return nil
}
