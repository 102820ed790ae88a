package accessory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hap-bridge/accessory-go/pkg/ipc"
)

// Construction errors.
var (
	ErrInvalidDisplayName = errors.New("display name must not be empty")
	ErrInvalidID          = errors.New("accessory identifier must be a valid UUID")
	ErrNilFactory         = errors.New("collaborator factory must not be nil")
)

// DuplicateIdentityError reports a service whose composite identity
// collides with one already registered on the accessory. Subtype is set
// only when the collision is a full duplicate (both services carry the
// same subtype); otherwise the added service simply lacked a
// distinguishing subtype.
type DuplicateIdentityError struct {
	Type    string
	Subtype string
}

func (e *DuplicateIdentityError) Error() string {
	if e.Subtype != "" {
		return fmt.Sprintf("duplicate service identity: type %s, subtype %q", e.Type, e.Subtype)
	}
	return fmt.Sprintf("duplicate service identity: type %s requires a distinct subtype", e.Type)
}

// Accessory models a single smart-home accessory as an aggregate of
// services and characteristics. It is the in-memory counterpart of the
// protocol-layer accessory (the Collaborator) and the source of truth
// for the flattened records the bridge persists across restarts.
type Accessory struct {
	mu sync.RWMutex

	// displayName is the identity hint shown to the user. Immutable
	// after construction.
	displayName string

	// id uniquely identifies the accessory within its bridge (UUID).
	id string

	category Category

	// Services in insertion order. The first is always the seeded
	// accessory-information service.
	services []*Service

	reachable bool

	// context is a free-form bag owned by the plugin, opaque here.
	context map[string]any

	// Provenance tags, set by the bridge when restoring or handing the
	// accessory to a plugin.
	pluginName   string
	platformName string

	// collaborator is the optional attached protocol twin. Nil until
	// Prepare; never torn down by this model.
	collaborator Collaborator

	cameraSource CameraSource

	identifySubs []func(IdentifyRequest)
	notifier     ipc.Notifier

	// logger is optional; all paths are nil-safe.
	logger *slog.Logger
}

// New creates an accessory with a seeded accessory-information service.
// displayName must be non-empty and id must be a valid UUID string.
// category defaults to CategoryOther.
func New(displayName, id string, category ...Category) (*Accessory, error) {
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}
	if id == "" {
		return nil, ErrInvalidID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	cat := CategoryOther
	if len(category) > 0 && category[0] != 0 {
		cat = category[0]
	}

	return &Accessory{
		displayName: displayName,
		id:          id,
		category:    cat,
		services:    []*Service{newAccessoryInformation(displayName)},
		context:     make(map[string]any),
	}, nil
}

// DisplayName returns the accessory display name.
func (a *Accessory) DisplayName() string {
	return a.displayName
}

// ID returns the accessory identifier (UUID string).
func (a *Accessory) ID() string {
	return a.id
}

// Category returns the accessory category.
func (a *Accessory) Category() Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.category
}

// Reachable reports the last known reachability.
func (a *Accessory) Reachable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.reachable
}

// Context returns the plugin-owned context bag.
func (a *Accessory) Context() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.context
}

// SetContext replaces the plugin-owned context bag.
func (a *Accessory) SetContext(ctx map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ctx == nil {
		ctx = make(map[string]any)
	}
	a.context = ctx
}

// PluginName returns the owning plugin name, empty when unset.
func (a *Accessory) PluginName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pluginName
}

// SetPluginName tags the accessory with its owning plugin.
func (a *Accessory) SetPluginName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pluginName = name
}

// PlatformName returns the owning platform name, empty when unset.
func (a *Accessory) PlatformName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.platformName
}

// SetPlatformName tags the accessory with its owning platform.
func (a *Accessory) SetPlatformName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.platformName = name
}

// SetLogger sets an optional logger for debug output.
func (a *Accessory) SetLogger(logger *slog.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = logger
}

// SetParentNotifier sets the channel used to forward identify requests
// to a parent process.
func (a *Accessory) SetParentNotifier(n ipc.Notifier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifier = n
}

// Services returns the services in insertion order.
func (a *Accessory) Services() []*Service {
	a.mu.RLock()
	defer a.mu.RUnlock()

	result := make([]*Service, len(a.services))
	copy(result, a.services)
	return result
}

// AddService registers a service. Within one accessory no two services
// may share both type UUID and subtype; a service whose type collides
// with an existing one must carry a distinct subtype. On success the
// addition is mirrored onto an attached collaborator and the service is
// returned.
func (a *Accessory) AddService(svc *Service) (*Service, error) {
	a.mu.Lock()
	for _, existing := range a.services {
		if existing.Type() != svc.Type() {
			continue
		}
		if svc.Subtype() == "" || svc.Subtype() == existing.Subtype() {
			dup := &DuplicateIdentityError{Type: svc.Type()}
			if svc.Subtype() == existing.Subtype() {
				dup.Subtype = svc.Subtype()
			}
			a.mu.Unlock()
			return nil, dup
		}
	}
	a.services = append(a.services, svc)
	collaborator := a.collaborator
	logger := a.logger
	a.mu.Unlock()

	if logger != nil {
		logger.Debug("service added",
			"accessory", a.displayName,
			"type", svc.Type(),
			"subtype", svc.Subtype(),
		)
	}

	if collaborator != nil {
		if err := collaborator.AddService(svc); err != nil {
			return nil, fmt.Errorf("mirror service addition: %w", err)
		}
	}
	return svc, nil
}

// RemoveService removes a service found by reference identity. Absent
// services are a no-op. On removal the service's change subscriptions
// are released and the removal is mirrored onto an attached
// collaborator.
func (a *Accessory) RemoveService(svc *Service) {
	a.mu.Lock()
	index := -1
	for i, existing := range a.services {
		if existing == svc {
			index = i
			break
		}
	}
	if index < 0 {
		a.mu.Unlock()
		return
	}
	a.services = append(a.services[:index], a.services[index+1:]...)
	collaborator := a.collaborator
	logger := a.logger
	a.mu.Unlock()

	svc.releaseSubscriptions()

	if logger != nil {
		logger.Debug("service removed",
			"accessory", a.displayName,
			"type", svc.Type(),
			"subtype", svc.Subtype(),
		)
	}

	if collaborator != nil {
		collaborator.RemoveService(svc)
	}
}

// SetServices installs the full service list in one bulk operation,
// bypassing identity validation and collaborator mirroring. Used when
// rebuilding an accessory from a trusted record; live code paths must
// use AddService.
func (a *Accessory) SetServices(services []*Service) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.services = services
}

// ServiceSelector selects services by display name or by type UUID.
// Construct with ByName or ByType.
type ServiceSelector struct {
	name    string
	byName  bool
	typeTag string
}

// ByName selects the first service whose display name equals name.
func ByName(name string) ServiceSelector {
	return ServiceSelector{name: name, byName: true}
}

// ByType selects the first service whose type UUID equals typeUUID.
func ByType(typeUUID string) ServiceSelector {
	return ServiceSelector{typeTag: typeUUID}
}

func (sel ServiceSelector) matches(svc *Service) bool {
	if sel.byName {
		return svc.DisplayName() == sel.name
	}
	return svc.Type() == sel.typeTag
}

// GetService returns the first service matching the selector in
// insertion order, or nil.
func (a *Accessory) GetService(sel ServiceSelector) *Service {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, svc := range a.services {
		if sel.matches(svc) {
			return svc
		}
	}
	return nil
}

// GetServiceByTypeAndSubtype returns the first service with the given
// type UUID and exact subtype, or nil.
func (a *Accessory) GetServiceByTypeAndSubtype(typeUUID, subtype string) *Service {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, svc := range a.services {
		if svc.Type() == typeUUID && svc.Subtype() == subtype {
			return svc
		}
	}
	return nil
}

// UpdateReachability sets the reachability flag and mirrors it onto an
// attached collaborator, keeping both sides equal.
func (a *Accessory) UpdateReachability(reachable bool) {
	a.mu.Lock()
	a.reachable = reachable
	collaborator := a.collaborator
	a.mu.Unlock()

	if collaborator != nil {
		collaborator.UpdateReachability(reachable)
	}
}

// ConfigureCameraSource stores the camera source and registers every
// service it exposes through AddService, so identity validation and
// collaborator mirroring apply uniformly.
func (a *Accessory) ConfigureCameraSource(src CameraSource) error {
	a.mu.Lock()
	a.cameraSource = src
	a.mu.Unlock()

	for _, svc := range src.Services() {
		if _, err := a.AddService(svc); err != nil {
			return fmt.Errorf("camera source service: %w", err)
		}
	}
	return nil
}

// CameraSource returns the configured camera source, nil when absent.
func (a *Accessory) CameraSource() CameraSource {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cameraSource
}

// Collaborator returns the attached collaborator, nil before Prepare.
func (a *Accessory) Collaborator() Collaborator {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.collaborator
}

// Prepare constructs the protocol-layer twin through factory, sideloads
// the full current service list in one bulk operation, copies category
// and reachability onto it and subscribes to its identify signal.
// Subsequent registry mutations are mirrored incrementally.
func (a *Accessory) Prepare(factory CollaboratorFactory) error {
	if factory == nil {
		return ErrNilFactory
	}

	collaborator, err := factory(a.displayName, a.id)
	if err != nil {
		return fmt.Errorf("prepare collaborator: %w", err)
	}

	a.mu.Lock()
	services := make([]*Service, len(a.services))
	copy(services, a.services)
	category := a.category
	reachable := a.reachable
	a.collaborator = collaborator
	logger := a.logger
	a.mu.Unlock()

	collaborator.SetServices(services)
	collaborator.SetCategory(category)
	collaborator.UpdateReachability(reachable)
	collaborator.OnIdentify(a.handleIdentify)

	if logger != nil {
		logger.Debug("collaborator attached",
			"accessory", a.displayName,
			"services", len(services),
		)
	}
	return nil
}
