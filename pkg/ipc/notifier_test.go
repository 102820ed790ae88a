package ipc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestProcessNotifierWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	n := NewProcessNotifier(&buf)

	n.Notify(Message{Event: EventIdentify, Data: true})
	n.Notify(Message{Event: EventIdentify, Data: false})
	n.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first Message
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.Event != EventIdentify {
		t.Errorf("expected event %q, got %q", EventIdentify, first.Event)
	}
	if first.Data != true {
		t.Errorf("expected data true, got %v", first.Data)
	}
}

func TestProcessNotifierMessageShape(t *testing.T) {
	var buf bytes.Buffer
	n := NewProcessNotifier(&buf)

	n.Notify(Message{Event: EventIdentify, Data: true})
	n.Close()

	want := `{"event":"identify","data":true}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// blockedWriter blocks until released, forcing the notifier buffer full.
type blockedWriter struct {
	release chan struct{}
}

func (w *blockedWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

func TestProcessNotifierDropsWhenFull(t *testing.T) {
	w := &blockedWriter{release: make(chan struct{})}
	n := NewProcessNotifier(w)

	// One message may be in flight in the writer goroutine; everything
	// beyond the buffer must be dropped without blocking.
	for i := 0; i < DefaultBufferSize+10; i++ {
		n.Notify(Message{Event: EventIdentify, Data: false})
	}

	if n.Dropped() == 0 {
		t.Error("expected dropped messages with a blocked writer")
	}

	close(w.release)
	n.Close()
}

func TestProcessNotifierCloseIsIdempotent(t *testing.T) {
	n := NewProcessNotifier(&bytes.Buffer{})
	n.Close()
	n.Close()
}
