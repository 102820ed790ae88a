package accessory

import "sync"

// Well-known HAP characteristic type UUIDs used by the seeded
// accessory-information service.
const (
	CharTypeName             = "00000023-0000-1000-8000-0026BB765291"
	CharTypeManufacturer     = "00000020-0000-1000-8000-0026BB765291"
	CharTypeModel            = "00000021-0000-1000-8000-0026BB765291"
	CharTypeSerialNumber     = "00000030-0000-1000-8000-0026BB765291"
	CharTypeIdentify         = "00000014-0000-1000-8000-0026BB765291"
	CharTypeFirmwareRevision = "00000052-0000-1000-8000-0026BB765291"
)

// Characteristic is a single readable/writable/notifiable property of a
// service. Props is an opaque capability/constraint descriptor owned by
// the protocol layer; this model stores and round-trips it untouched.
type Characteristic struct {
	mu sync.RWMutex

	displayName string
	charType    string
	props       map[string]any
	value       any
	eventOnly   bool

	// Change listeners, released when the owning service is removed.
	listeners []func(old, new any)
}

// NewCharacteristic creates a characteristic of the given type.
func NewCharacteristic(displayName, typeUUID string, props map[string]any) *Characteristic {
	return &Characteristic{
		displayName: displayName,
		charType:    typeUUID,
		props:       props,
	}
}

// DisplayName returns the characteristic display name.
func (c *Characteristic) DisplayName() string {
	return c.displayName
}

// Type returns the characteristic type UUID.
func (c *Characteristic) Type() string {
	return c.charType
}

// Props returns the opaque capability descriptor.
func (c *Characteristic) Props() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.props
}

// Value returns the current value.
func (c *Characteristic) Value() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue sets the current value and notifies change listeners.
func (c *Characteristic) SetValue(value any) {
	c.mu.Lock()
	old := c.value
	c.value = value
	listeners := make([]func(old, new any), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(old, value)
	}
}

// EventOnly reports whether the characteristic is event-only
// (e.g. programmable switch events, which carry no persistent value).
func (c *Characteristic) EventOnly() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.eventOnly
}

// SetEventOnly marks the characteristic as event-only.
func (c *Characteristic) SetEventOnly(eventOnly bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eventOnly = eventOnly
}

// OnChange registers a listener invoked after every SetValue.
func (c *Characteristic) OnChange(fn func(old, new any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// releaseSubscriptions drops all change listeners.
func (c *Characteristic) releaseSubscriptions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = nil
}
