package chat

import (
	"sync"

	goopenai "github.com/sashabaranov/go-openai"
)

// History keeps the rolling conversation window sent with each completion
// request. Old turns fall off the front once the turn limit is reached; the
// system prompt never counts against the window.
type History struct {
	mu       sync.Mutex
	limit    int
	messages []goopenai.ChatCompletionMessage
}

// NewHistory creates a History bounded to limit messages.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append records one message, evicting the oldest when over the limit.
func (h *History) Append(msg goopenai.ChatCompletionMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msg)
	if len(h.messages) > h.limit {
		h.messages = h.messages[len(h.messages)-h.limit:]
	}
}

// Messages returns a copy of the current window.
func (h *History) Messages() []goopenai.ChatCompletionMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]goopenai.ChatCompletionMessage, len(h.messages))
	copy(out, h.messages)

	return out
}

// Reset discards the conversation so far.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = nil
}
