package speaker_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/edasprometai/Orpheus-app/internal/player"
	"github.com/edasprometai/Orpheus-app/internal/speaker"
	"github.com/edasprometai/Orpheus-app/internal/tts"
	"github.com/edasprometai/Orpheus-app/internal/vocoder"
	"github.com/edasprometai/Orpheus-app/pkg/snac"
)

type fixedGenerator struct{ output string }

func (f fixedGenerator) GenerateSpeechTokens(_ context.Context, _, _ string) (string, error) {
	return f.output, nil
}

type fixedDecoder struct{ waveform []float32 }

func (f fixedDecoder) Decode(_ context.Context, _ snac.Layers) ([]float32, error) {
	return f.waveform, nil
}

type recordingPlayer struct {
	played [][]int16
	rate   int
}

func (p *recordingPlayer) Play(_ context.Context, samples []int16, sampleRate int) error {
	p.played = append(p.played, samples)
	p.rate = sampleRate

	return nil
}

func validTokenText() string {
	var sb strings.Builder
	for j := 0; j < snac.FrameTokens; j++ {
		fmt.Fprintf(&sb, "<custom_token_%d>", int(snac.EncodeToken(j, 0)))
	}

	return sb.String()
}

func newTTS(t *testing.T, dec vocoder.Decoder) *tts.Service {
	t.Helper()

	cache, err := tts.NewClipCache(4)
	require.NoError(t, err)

	return tts.NewService(zaptest.NewLogger(t), fixedGenerator{output: validTokenText()}, dec, cache, "")
}

func TestSpeaker_Speak(t *testing.T) {
	dir := t.TempDir()
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), dir)
	require.NoError(t, err)

	p := &recordingPlayer{}
	s := speaker.NewSpeaker(zaptest.NewLogger(t), newTTS(t, fixedDecoder{waveform: []float32{0.5, -0.5}}), p, sink)

	require.NoError(t, s.Speak(context.Background(), "hello"))

	require.Len(t, p.played, 1)
	assert.Equal(t, snac.SampleRate, p.rate)

	// The clip was also archived.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSpeaker_SinkAsPlayerWritesOnce(t *testing.T) {
	dir := t.TempDir()
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), dir)
	require.NoError(t, err)

	s := speaker.NewSpeaker(zaptest.NewLogger(t), newTTS(t, fixedDecoder{waveform: []float32{1}}), sink, sink)

	require.NoError(t, s.Speak(context.Background(), "hello"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the sink doubles as player; the clip lands once")
}

func TestSpeaker_SynthesisErrorsPassThrough(t *testing.T) {
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), t.TempDir())
	require.NoError(t, err)

	s := speaker.NewSpeaker(zaptest.NewLogger(t), newTTS(t, nil), &recordingPlayer{}, sink)

	err = s.Speak(context.Background(), "hello")
	assert.ErrorIs(t, err, vocoder.ErrUnavailable)
}

func TestDescribe(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantKnown  bool
		wantNotice string
	}{
		"no_tokens":       {err: tts.ErrNoSpeechTokens, wantKnown: true, wantNotice: "no audio"},
		"no_valid_frames": {err: tts.ErrNoValidFrames, wantKnown: true, wantNotice: "malformed"},
		"unavailable":     {err: vocoder.ErrUnavailable, wantKnown: true, wantNotice: "unavailable"},
		"wrapped_outcome": {err: fmt.Errorf("wrap: %w", tts.ErrNoValidFrames), wantKnown: true, wantNotice: "malformed"},
		"other_error":     {err: errors.New("boom"), wantKnown: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			notice, ok := speaker.Describe(tt.err)

			assert.Equal(t, tt.wantKnown, ok)
			if tt.wantKnown {
				assert.Contains(t, notice, tt.wantNotice)
			}
		})
	}
}
