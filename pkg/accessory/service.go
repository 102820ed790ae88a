package accessory

import "sync"

// TypeAccessoryInformation is the HAP service type UUID of the metadata
// service seeded as the first service of every accessory.
const TypeAccessoryInformation = "0000003E-0000-1000-8000-0026BB765291"

// Default values for the seeded accessory-information characteristics.
const (
	DefaultManufacturer = "Default-Manufacturer"
	DefaultModel        = "Default-Model"
	DefaultSerialNumber = "Default-SerialNumber"
)

// ServiceKey is the composite identity of a service within one accessory:
// type UUID plus optional subtype. Its canonical string form is the only
// address space used for linked-service data in flattened records.
type ServiceKey struct {
	Type    string
	Subtype string
}

// String returns the canonical key form: type UUID concatenated with the
// subtype (empty string when absent).
func (k ServiceKey) String() string {
	return k.Type + k.Subtype
}

// Service is a functional grouping of characteristics on an accessory.
// The type UUID identifies the service category and is not unique per
// accessory; the subtype disambiguates multiple services of one type.
type Service struct {
	mu sync.RWMutex

	displayName string
	serviceType string
	subtype     string

	// Characteristics in insertion order.
	characteristics []*Characteristic

	// Linked services in insertion order.
	linked []*Service
}

// NewService creates a service. subtype may be empty; it is required when
// the accessory already carries another service of the same type.
func NewService(displayName, typeUUID, subtype string) *Service {
	return &Service{
		displayName: displayName,
		serviceType: typeUUID,
		subtype:     subtype,
	}
}

// newAccessoryInformation seeds the mandatory metadata service with the
// four default metadata characteristics.
func newAccessoryInformation(displayName string) *Service {
	svc := NewService(displayName, TypeAccessoryInformation, "")

	name := NewCharacteristic("Name", CharTypeName, nil)
	name.SetValue(displayName)
	svc.AddCharacteristic(name)

	manufacturer := NewCharacteristic("Manufacturer", CharTypeManufacturer, nil)
	manufacturer.SetValue(DefaultManufacturer)
	svc.AddCharacteristic(manufacturer)

	model := NewCharacteristic("Model", CharTypeModel, nil)
	model.SetValue(DefaultModel)
	svc.AddCharacteristic(model)

	serial := NewCharacteristic("Serial Number", CharTypeSerialNumber, nil)
	serial.SetValue(DefaultSerialNumber)
	svc.AddCharacteristic(serial)

	return svc
}

// DisplayName returns the service display name.
func (s *Service) DisplayName() string {
	return s.displayName
}

// Type returns the service type UUID.
func (s *Service) Type() string {
	return s.serviceType
}

// Subtype returns the service subtype, empty when absent.
func (s *Service) Subtype() string {
	return s.subtype
}

// Key returns the composite identity key of this service.
func (s *Service) Key() ServiceKey {
	return ServiceKey{Type: s.serviceType, Subtype: s.subtype}
}

// AddCharacteristic appends a characteristic.
func (s *Service) AddCharacteristic(c *Characteristic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characteristics = append(s.characteristics, c)
}

// SetCharacteristics replaces the full characteristic list in one bulk
// operation. Used when rebuilding a service from a trusted record, where
// per-characteristic validation has already happened at capture time.
func (s *Service) SetCharacteristics(characteristics []*Characteristic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characteristics = characteristics
}

// Characteristics returns the characteristics in insertion order.
func (s *Service) Characteristics() []*Characteristic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Characteristic, len(s.characteristics))
	copy(result, s.characteristics)
	return result
}

// GetCharacteristic returns the first characteristic with the given type
// UUID, or nil.
func (s *Service) GetCharacteristic(typeUUID string) *Characteristic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.characteristics {
		if c.Type() == typeUUID {
			return c
		}
	}
	return nil
}

// AddLinkedService appends a linked-service reference.
func (s *Service) AddLinkedService(target *Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.linked = append(s.linked, target)
}

// LinkedServices returns the linked services in insertion order.
func (s *Service) LinkedServices() []*Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Service, len(s.linked))
	copy(result, s.linked)
	return result
}

// releaseSubscriptions drops all change listeners on all characteristics.
// Called when the service is removed from its accessory.
func (s *Service) releaseSubscriptions() {
	s.mu.RLock()
	characteristics := make([]*Characteristic, len(s.characteristics))
	copy(characteristics, s.characteristics)
	s.mu.RUnlock()

	for _, c := range characteristics {
		c.releaseSubscriptions()
	}
}
