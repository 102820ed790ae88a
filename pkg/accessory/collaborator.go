package accessory

// Collaborator is the protocol-layer accessory twin this model attaches
// to. It is consumed, never implemented, by this package: pairing, value
// transport and advertisement all live behind it. Registry mutations are
// mirrored onto an attached collaborator so the externally visible
// accessory database never drifts from the in-memory graph.
type Collaborator interface {
	// AddService mirrors an incremental service addition.
	AddService(svc *Service) error

	// RemoveService mirrors a service removal.
	RemoveService(svc *Service)

	// SetServices sideloads the full service list in one bulk operation.
	SetServices(services []*Service)

	// SetCategory assigns the accessory category.
	SetCategory(category Category)

	// UpdateReachability mirrors the reachability flag.
	UpdateReachability(reachable bool)

	// OnIdentify subscribes to the identify signal. paired reports
	// whether the request came from a paired controller; ack must be
	// called once the request has been handled.
	OnIdentify(fn func(paired bool, ack func()))
}

// CollaboratorFactory constructs the protocol-layer twin for an accessory
// from its display name and identifier.
type CollaboratorFactory func(displayName, id string) (Collaborator, error)

// CameraSource exposes the services a camera implementation contributes
// to its accessory. Configured sources are registered through the normal
// service registry path so identity validation and collaborator
// mirroring apply uniformly.
type CameraSource interface {
	Services() []*Service
}
