package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/brettbedarf/dirforest/forest"
)

// Output writes shell results. In multiline mode interactive success output is
// queued and flushed in FIFO order when the mode is turned off. Errors and
// direct messages are never queued.
//
// Output implements [forest.Sink] so the engine's notices land here.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	multiline bool
	queue     []string
}

// NewOutput returns an Output writing to w with multiline mode off
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

var _ forest.Sink = (*Output)(nil)

// Notify routes an engine notice through [Output.Emit]
func (o *Output) Notify(n forest.Notice) {
	o.Emit(n.Text, n.Interactive)
}

// Emit handles a success message. Interactive messages print immediately, or
// are queued while multiline mode is on. Non-interactive messages print only
// while multiline mode is on.
func (o *Output) Emit(msg string, interactive bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.multiline && interactive:
		o.queue = append(o.queue, msg)
	case o.multiline || interactive:
		o.writeLocked(msg)
	}
}

// Error prints msg immediately regardless of mode
func (o *Output) Error(msg string) {
	o.Println(msg)
}

// Println prints msg immediately regardless of mode
func (o *Output) Println(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.writeLocked(msg)
}

// SetMultiline switches multiline mode. Turning it off flushes the queue.
func (o *Output) SetMultiline(on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.multiline = on
	if !on {
		o.flushLocked()
	}
}

// Multiline reports whether multiline mode is on
func (o *Output) Multiline() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.multiline
}

// Pending returns a copy of the queued messages
func (o *Output) Pending() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.queue...)
}

func (o *Output) flushLocked() {
	for _, msg := range o.queue {
		o.writeLocked(msg)
	}
	o.queue = nil
}

func (o *Output) writeLocked(msg string) {
	// nolint:errcheck
	fmt.Fprintln(o.w, msg)
}
