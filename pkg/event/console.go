package event

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fimon-project/fimon/pkg/color"
)

// ConsoleSink writes events to a writer, one per line, coloring the
// leading tag when color output is enabled.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink creates a ConsoleSink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Emit writes the message followed by a newline.
func (c *ConsoleSink) Emit(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, colorize(message))
}

func colorize(message string) string {
	switch {
	case strings.HasPrefix(message, TagCreated):
		return color.Greenf(TagCreated) + message[len(TagCreated):]
	case strings.HasPrefix(message, TagDeleted):
		return color.Redf(TagDeleted) + message[len(TagDeleted):]
	case strings.HasPrefix(message, TagModified):
		return color.Yellowf(TagModified) + message[len(TagModified):]
	case strings.HasPrefix(message, TagError):
		return color.Redf(TagError) + message[len(TagError):]
	default:
		return message
	}
}

// Recorder is a Sink that captures emitted messages, for tests and for
// collaborators that buffer events before displaying them.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Emit appends the message to the recorded list.
func (r *Recorder) Emit(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of everything emitted so far, in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Reset discards all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
