package tts_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/edasprometai/Orpheus-app/internal/tts"
	"github.com/edasprometai/Orpheus-app/internal/vocoder"
	"github.com/edasprometai/Orpheus-app/pkg/snac"
)

// fakeGenerator returns canned token text and counts invocations.
type fakeGenerator struct {
	output string
	err    error
	calls  int
}

func (f *fakeGenerator) GenerateSpeechTokens(_ context.Context, _, _ string) (string, error) {
	f.calls++

	return f.output, f.err
}

// fakeDecoder returns a canned waveform and records what it was handed.
type fakeDecoder struct {
	waveform []float32
	err      error
	calls    int
	layers   snac.Layers
}

func (f *fakeDecoder) Decode(_ context.Context, layers snac.Layers) ([]float32, error) {
	f.calls++
	f.layers = layers

	return f.waveform, f.err
}

// orderedTokenText renders n well-formed frames as marker text, each
// position carrying its layer with code index 0.
func orderedTokenText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < snac.FrameTokens; j++ {
			fmt.Fprintf(&sb, "<custom_token_%d>", int(snac.EncodeToken(j, 0)))
		}
	}

	return sb.String()
}

func newService(t *testing.T, gen tts.TokenGenerator, dec vocoder.Decoder) *tts.Service {
	t.Helper()

	cache, err := tts.NewClipCache(8)
	require.NoError(t, err)

	return tts.NewService(zaptest.NewLogger(t), gen, dec, cache, "")
}

func TestService_Synthesize(t *testing.T) {
	gen := &fakeGenerator{output: "intro " + orderedTokenText(2) + " trailing"}
	dec := &fakeDecoder{waveform: []float32{0.5, -0.5, 0.25}}
	svc := newService(t, gen, dec)

	clip, err := svc.Synthesize(context.Background(), "hello there")
	require.NoError(t, err)

	assert.Equal(t, snac.SampleRate, clip.SampleRate)
	assert.Equal(t, []int16{32767, -32767, 16384}, clip.Samples)

	// The decoder received the regrouped layers in the 1:2:4 ratio.
	assert.Equal(t, 1, dec.calls)
	assert.Len(t, dec.layers.Layer1, 2)
	assert.Len(t, dec.layers.Layer2, 4)
	assert.Len(t, dec.layers.Layer3, 8)
}

func TestService_Synthesize_NoTokens(t *testing.T) {
	gen := &fakeGenerator{output: "sorry, I cannot produce audio for that"}
	dec := &fakeDecoder{waveform: []float32{1}}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")

	assert.ErrorIs(t, err, tts.ErrNoSpeechTokens)
	assert.Zero(t, dec.calls, "absence must be decided without invoking the codec")
}

func TestService_Synthesize_TooFewTokens(t *testing.T) {
	gen := &fakeGenerator{output: "<custom_token_10>"}
	dec := &fakeDecoder{waveform: []float32{1}}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")

	assert.ErrorIs(t, err, tts.ErrNoValidFrames)
	assert.Zero(t, dec.calls)
}

func TestService_Synthesize_MisorderedFrame(t *testing.T) {
	// Positions 0 and 1 swapped: the single frame is invalid as a whole.
	tokens := []snac.Token{
		snac.EncodeToken(1, 0), snac.EncodeToken(0, 0), snac.EncodeToken(2, 0),
		snac.EncodeToken(3, 0), snac.EncodeToken(4, 0), snac.EncodeToken(5, 0),
		snac.EncodeToken(6, 0),
	}
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "<custom_token_%d>", int(tok))
	}

	gen := &fakeGenerator{output: sb.String()}
	dec := &fakeDecoder{waveform: []float32{1}}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")

	assert.ErrorIs(t, err, tts.ErrNoValidFrames)
	assert.Zero(t, dec.calls)
}

func TestService_Synthesize_DecoderUnavailable(t *testing.T) {
	gen := &fakeGenerator{output: orderedTokenText(1)}
	svc := newService(t, gen, nil)

	_, err := svc.Synthesize(context.Background(), "hello")

	assert.ErrorIs(t, err, vocoder.ErrUnavailable)
}

func TestService_Synthesize_DecodeFailure(t *testing.T) {
	gen := &fakeGenerator{output: orderedTokenText(1)}
	dec := &fakeDecoder{err: errors.New("decode server exploded")}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")

	require.Error(t, err)
	assert.NotErrorIs(t, err, tts.ErrNoSpeechTokens)
	assert.NotErrorIs(t, err, tts.ErrNoValidFrames)
	assert.Contains(t, err.Error(), "decode failed")
}

func TestService_Synthesize_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	dec := &fakeDecoder{waveform: []float32{1}}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")

	assert.Error(t, err)
	assert.Zero(t, dec.calls)
}

func TestService_Synthesize_Deterministic(t *testing.T) {
	gen := &fakeGenerator{output: orderedTokenText(3)}
	dec := &fakeDecoder{waveform: []float32{0.25, -1.0, 0.5}}

	// Two independent services, same inputs: bit-identical PCM.
	a, err := newService(t, gen, dec).Synthesize(context.Background(), "hi")
	require.NoError(t, err)
	b, err := newService(t, gen, dec).Synthesize(context.Background(), "hi")
	require.NoError(t, err)

	assert.Equal(t, a.Samples, b.Samples)
}

func TestService_Synthesize_CacheHit(t *testing.T) {
	gen := &fakeGenerator{output: orderedTokenText(1)}
	dec := &fakeDecoder{waveform: []float32{0.5}}
	svc := newService(t, gen, dec)

	first, err := svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	second, err := svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)

	assert.Same(t, first, second, "second call should come from the cache")
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, dec.calls)
}

func TestService_Synthesize_CacheKeyedByVoice(t *testing.T) {
	gen := &fakeGenerator{output: orderedTokenText(1)}
	dec := &fakeDecoder{waveform: []float32{0.5}}
	svc := newService(t, gen, dec)

	_, err := svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)

	require.NoError(t, svc.SetVoice("leo"))
	_, err = svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, 2, gen.calls, "switching voices must bypass the cached clip")
}

func TestService_SetVoice(t *testing.T) {
	svc := newService(t, &fakeGenerator{}, nil)

	assert.Equal(t, "tara", svc.Voice(), "default voice")
	require.NoError(t, svc.SetVoice("zoe"))
	assert.Equal(t, "zoe", svc.Voice())

	assert.Error(t, svc.SetVoice("hal9000"))
	assert.Equal(t, "zoe", svc.Voice(), "failed switch leaves voice unchanged")
}
