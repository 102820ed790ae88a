package accessory

import "github.com/hap-bridge/accessory-go/pkg/ipc"

// EventName identifies an event the accessory model can emit.
type EventName string

// Events emitted by an Accessory.
const (
	// EventIdentify fires when the attached collaborator receives an
	// identify request.
	EventIdentify EventName = "identify"
)

// IdentifyRequest is delivered to identify subscribers. Done acknowledges
// the request towards the protocol layer and is always non-nil.
type IdentifyRequest struct {
	// Paired reports whether the request came from a paired controller.
	Paired bool

	// Done acknowledges the request. Safe to call at most once.
	Done func()
}

// EventNames returns the events this accessory may emit.
func (a *Accessory) EventNames() []EventName {
	return []EventName{EventIdentify}
}

// OnIdentify subscribes to identify requests relayed from the attached
// collaborator. With at least one subscriber, requests are delivered
// locally and additionally forwarded to the parent process; with none,
// requests are acknowledged immediately.
func (a *Accessory) OnIdentify(fn func(IdentifyRequest)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.identifySubs = append(a.identifySubs, fn)
}

// handleIdentify is the collaborator-side identify callback.
func (a *Accessory) handleIdentify(paired bool, ack func()) {
	a.mu.RLock()
	subs := make([]func(IdentifyRequest), len(a.identifySubs))
	copy(subs, a.identifySubs)
	notifier := a.notifier
	logger := a.logger
	a.mu.RUnlock()

	if ack == nil {
		ack = func() {}
	}

	if len(subs) == 0 {
		if logger != nil {
			logger.Debug("identify request acknowledged without handler", "paired", paired)
		}
		ack()
		return
	}

	req := IdentifyRequest{Paired: paired, Done: ack}
	for _, fn := range subs {
		fn(req)
	}

	if notifier != nil {
		notifier.Notify(ipc.Message{Event: ipc.EventIdentify, Data: paired})
	}
}
