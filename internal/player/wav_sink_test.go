package player_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/edasprometai/Orpheus-app/internal/player"
	"github.com/edasprometai/Orpheus-app/pkg/audio"
)

func TestWAVSink_Play(t *testing.T) {
	dir := t.TempDir()
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), dir)
	require.NoError(t, err)

	samples := []int16{1, -1, 100, -100}
	require.NoError(t, sink.Play(context.Background(), samples, audio.VocoderSampleRate))

	path, ok := sink.LastPath()
	require.True(t, ok)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, samples, audio.LEToPCMInt16(data[44:]))
}

func TestWAVSink_LastPathBeforeAnyClip(t *testing.T) {
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), t.TempDir())
	require.NoError(t, err)

	_, ok := sink.LastPath()
	assert.False(t, ok)
	assert.Error(t, sink.Save(filepath.Join(t.TempDir(), "out.wav")))
}

func TestWAVSink_Save(t *testing.T) {
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), t.TempDir())
	require.NoError(t, err)

	require.NoError(t, sink.Play(context.Background(), []int16{5, 6, 7}, audio.VocoderSampleRate))

	dst := filepath.Join(t.TempDir(), "pinned.wav")
	require.NoError(t, sink.Save(dst))

	src, _ := sink.LastPath()
	srcData, err := os.ReadFile(src)
	require.NoError(t, err)
	dstData, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, srcData, dstData)
}

func TestWAVSink_EmptyDirUsesTemp(t *testing.T) {
	sink, err := player.NewWAVSink(zaptest.NewLogger(t), "")
	require.NoError(t, err)

	require.NoError(t, sink.Play(context.Background(), []int16{1}, audio.VocoderSampleRate))

	path, ok := sink.LastPath()
	require.True(t, ok)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
