// Package player provides the playback collaborators that consume
// synthesized PCM: a PortAudio device sink and a WAV file sink.
package player

import (
	"context"
)

// Player plays a buffer of 16-bit mono PCM at the given sample rate,
// blocking until playback finishes or ctx is cancelled.
type Player interface {
	Play(ctx context.Context, samples []int16, sampleRate int) error
}
