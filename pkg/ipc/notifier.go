package ipc

import (
	"encoding/json"
	"io"
	"sync"
	"sync/atomic"
)

// Well-known event names.
const (
	// EventIdentify is sent when an identify request has no local handler
	// path and must be surfaced to the parent process. Data carries the
	// paired flag of the request.
	EventIdentify = "identify"
)

// DefaultBufferSize is the outbound message buffer for ProcessNotifier.
const DefaultBufferSize = 16

// Message is the single message shape exchanged with the parent process.
type Message struct {
	// Event is the event name (e.g. EventIdentify).
	Event string `json:"event"`

	// Data is the event payload. For EventIdentify it is a boolean
	// indicating whether the request came from a paired controller.
	Data any `json:"data"`
}

// Notifier delivers messages to a parent process.
type Notifier interface {
	// Notify sends a message. Implementations must not block and must not
	// surface delivery errors to the caller.
	Notify(Message)
}

// ProcessNotifier writes newline-delimited JSON messages to an io.Writer,
// typically a pipe inherited from the parent process. Writes happen on a
// dedicated goroutine so Notify never blocks the mutation path.
type ProcessNotifier struct {
	ch      chan Message
	done    chan struct{}
	once    sync.Once
	dropped atomic.Uint64
}

// NewProcessNotifier creates a notifier writing to w and starts its
// writer goroutine.
func NewProcessNotifier(w io.Writer) *ProcessNotifier {
	n := &ProcessNotifier{
		ch:   make(chan Message, DefaultBufferSize),
		done: make(chan struct{}),
	}

	go func() {
		defer close(n.done)
		enc := json.NewEncoder(w)
		for msg := range n.ch {
			// Fire-and-forget: a failed write is not reported anywhere.
			_ = enc.Encode(msg)
		}
	}()

	return n
}

// Notify enqueues a message for delivery. When the buffer is full the
// message is dropped and counted.
func (n *ProcessNotifier) Notify(msg Message) {
	select {
	case n.ch <- msg:
	default:
		n.dropped.Add(1)
	}
}

// Dropped returns the number of messages dropped due to a full buffer.
func (n *ProcessNotifier) Dropped() uint64 {
	return n.dropped.Load()
}

// Close stops the writer goroutine after draining queued messages.
// Notify must not be called after Close.
func (n *ProcessNotifier) Close() {
	n.once.Do(func() {
		close(n.ch)
		<-n.done
	})
}
