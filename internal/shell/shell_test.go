package shell_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/edasprometai/Orpheus-app/internal/commands"
	"github.com/edasprometai/Orpheus-app/internal/shell"
	"github.com/edasprometai/Orpheus-app/internal/tts"
)

type fakeChat struct {
	reply string
	err   error
	sent  []string
}

func (f *fakeChat) Send(_ context.Context, text string) (string, error) {
	f.sent = append(f.sent, text)

	return f.reply, f.err
}

type fakeSpeaker struct {
	err    error
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)

	return f.err
}

type echoCommand struct{}

func (echoCommand) Name() string        { return "echo" }
func (echoCommand) Description() string { return "echo the arguments" }

func (echoCommand) Execute(_ context.Context, args string) (string, error) {
	return "echo: " + args, nil
}

// run feeds input through a shell until the read loop drains it.
func run(t *testing.T, input string, chat *fakeChat, sp *fakeSpeaker) string {
	t.Helper()

	registry := commands.NewRegistry(zaptest.NewLogger(t), []commands.Command{echoCommand{}})
	var out bytes.Buffer
	sh := shell.NewShell(zaptest.NewLogger(t), chat, sp, registry, strings.NewReader(input), &out)

	require.NoError(t, sh.Start(context.Background()))
	select {
	case <-sh.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not drain input")
	}
	require.NoError(t, sh.Stop(context.Background()))

	return out.String()
}

func TestShell_ChatTurnIsSpoken(t *testing.T) {
	chat := &fakeChat{reply: "hi there"}
	sp := &fakeSpeaker{}

	out := run(t, "hello\n", chat, sp)

	assert.Equal(t, []string{"hello"}, chat.sent)
	assert.Equal(t, []string{"hi there"}, sp.spoken)
	assert.Contains(t, out, "assistant> hi there")
}

func TestShell_CommandBypassesChat(t *testing.T) {
	chat := &fakeChat{reply: "unused"}
	sp := &fakeSpeaker{}

	out := run(t, "/echo hello\n", chat, sp)

	assert.Empty(t, chat.sent)
	assert.Empty(t, sp.spoken)
	assert.Contains(t, out, "echo: hello")
}

func TestShell_BlankLinesSkipped(t *testing.T) {
	chat := &fakeChat{reply: "r"}

	_ = run(t, "\n   \nreal input\n", chat, &fakeSpeaker{})

	assert.Equal(t, []string{"real input"}, chat.sent)
}

func TestShell_ChatFailureIsReported(t *testing.T) {
	chat := &fakeChat{err: errors.New("api down")}
	sp := &fakeSpeaker{}

	out := run(t, "hello\n", chat, sp)

	assert.Contains(t, out, "could not reach the chat service")
	assert.Empty(t, sp.spoken)
}

type recordingShutdowner struct {
	calls int
}

func (s *recordingShutdowner) Shutdown(_ ...fx.ShutdownOption) error {
	s.calls++

	return nil
}

func TestShell_QuitCommandRequestsShutdown(t *testing.T) {
	chat := &fakeChat{reply: "unused"}
	shutdowner := &recordingShutdowner{}

	registry := commands.NewRegistry(zaptest.NewLogger(t), []commands.Command{
		commands.NewQuitCommand(zaptest.NewLogger(t), shutdowner),
	})
	var out bytes.Buffer
	sh := shell.NewShell(zaptest.NewLogger(t), chat, &fakeSpeaker{}, registry, strings.NewReader("/quit\n"), &out)

	require.NoError(t, sh.Start(context.Background()))
	select {
	case <-sh.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not drain input")
	}
	require.NoError(t, sh.Stop(context.Background()))

	assert.Equal(t, 1, shutdowner.calls)
	assert.Empty(t, chat.sent, "a quit line is not a chat turn")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestShell_SynthesisAbsenceShowsNeutralNotice(t *testing.T) {
	chat := &fakeChat{reply: "reply"}
	sp := &fakeSpeaker{err: tts.ErrNoSpeechTokens}

	out := run(t, "hello\n", chat, sp)

	assert.Contains(t, out, "assistant> reply", "the text reply still lands")
	assert.Contains(t, out, "no audio was generated")
	assert.NotContains(t, out, "synthesis failed")
}
