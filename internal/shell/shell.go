// Package shell provides the terminal chat surface: it reads user input,
// routes prefix commands, runs chat turns, and speaks the replies.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/commands"
	"github.com/edasprometai/Orpheus-app/internal/speaker"
)

const prompt = "you> "

// ChatService is the chat collaborator the shell talks to.
type ChatService interface {
	Send(ctx context.Context, userText string) (string, error)
}

// Speaker is the synthesis-and-playback collaborator.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Shell is the interactive chat loop.
type Shell struct {
	logger   *zap.Logger
	chat     ChatService
	speaker  Speaker
	registry *commands.Registry

	in  io.Reader
	out io.Writer

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewShell creates a Shell reading from in and writing to out.
func NewShell(logger *zap.Logger, chat ChatService, s Speaker, registry *commands.Registry, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger:   logger.Named("shell"),
		chat:     chat,
		speaker:  s,
		registry: registry,
		in:       in,
		out:      out,
		done:     make(chan struct{}),
	}
}

// Start launches the read loop in the background.
func (s *Shell) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(loopCtx)

	s.logger.Info("Shell started")

	return nil
}

// Stop terminates the read loop.
func (s *Shell) Stop(ctx context.Context) error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})

	s.logger.Info("Shell stopped")

	return nil
}

// Done is closed when the read loop exits, normally on end of input.
func (s *Shell) Done() <-chan struct{} {
	return s.done
}

func (s *Shell) loop(ctx context.Context) {
	defer close(s.done)

	fmt.Fprintln(s.out, "Type a message to chat, or /help for commands. /quit or Ctrl-D ends the session.")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				s.logger.Error("Input read failed", zap.Error(err))
			}
			fmt.Fprintln(s.out)

			return
		}
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.handleLine(ctx, line)
	}
}

// handleLine processes one input line: command dispatch or a chat turn.
func (s *Shell) handleLine(ctx context.Context, line string) {
	if s.registry.IsCommand(line) {
		reply, err := s.registry.Dispatch(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)

			return
		}
		if reply != "" {
			fmt.Fprintln(s.out, reply)
		}

		return
	}

	reply, err := s.chat.Send(ctx, line)
	if err != nil {
		s.logger.Error("Chat turn failed", zap.Error(err))
		fmt.Fprintln(s.out, "Sorry, I could not reach the chat service. Please try again.")

		return
	}

	fmt.Fprintf(s.out, "assistant> %s\n", reply)

	if err := s.speaker.Speak(ctx, reply); err != nil {
		if notice, ok := speaker.Describe(err); ok {
			fmt.Fprintln(s.out, notice)

			return
		}
		if errors.Is(err, context.Canceled) {
			return
		}

		s.logger.Error("Speech synthesis failed", zap.Error(err))
		fmt.Fprintln(s.out, "(speech synthesis failed, see the log for details)")
	}
}
