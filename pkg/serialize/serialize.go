package serialize

import (
	"github.com/hap-bridge/accessory-go/pkg/accessory"
)

// CharacteristicRecord is the flattened form of one characteristic.
type CharacteristicRecord struct {
	DisplayName string         `json:"displayName" yaml:"displayName"`
	Type        string         `json:"UUID" yaml:"UUID"`
	Props       map[string]any `json:"props" yaml:"props"`
	Value       any            `json:"value" yaml:"value"`
	EventOnly   bool           `json:"eventOnlyCharacteristic" yaml:"eventOnlyCharacteristic"`
}

// ServiceRecord is the flattened form of one service.
type ServiceRecord struct {
	DisplayName     string                 `json:"displayName" yaml:"displayName"`
	Type            string                 `json:"UUID" yaml:"UUID"`
	Subtype         string                 `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Characteristics []CharacteristicRecord `json:"characteristics" yaml:"characteristics"`
}

// Key returns the canonical composite key of the service record, the
// form used in AccessoryRecord.LinkedServices.
func (s ServiceRecord) Key() string {
	return accessory.ServiceKey{Type: s.Type, Subtype: s.Subtype}.String()
}

// AccessoryRecord is the flattened, plain-data form of an accessory. It
// carries no object references: cross-service links are expressed as a
// mapping from each service's canonical composite key to the ordered
// canonical keys of its linked services, making the record safe to pass
// through process messaging or file storage.
type AccessoryRecord struct {
	Plugin         string              `json:"plugin" yaml:"plugin"`
	Platform       string              `json:"platform" yaml:"platform"`
	DisplayName    string              `json:"displayName" yaml:"displayName"`
	ID             string              `json:"UUID" yaml:"UUID"`
	Category       accessory.Category  `json:"category" yaml:"category"`
	Context        map[string]any      `json:"context" yaml:"context"`
	LinkedServices map[string][]string `json:"linkedServices" yaml:"linkedServices"`
	Services       []ServiceRecord     `json:"services" yaml:"services"`
}

// Serialize flattens an accessory into a plain-data record. Collaborator
// attachment state and event subscriptions are intentionally dropped;
// everything needed for reconstruction survives.
func Serialize(a *accessory.Accessory) *AccessoryRecord {
	services := a.Services()

	serviceRecords := make([]ServiceRecord, 0, len(services))
	linked := make(map[string][]string, len(services))

	for _, svc := range services {
		characteristics := svc.Characteristics()
		charRecords := make([]CharacteristicRecord, 0, len(characteristics))
		for _, c := range characteristics {
			charRecords = append(charRecords, CharacteristicRecord{
				DisplayName: c.DisplayName(),
				Type:        c.Type(),
				Props:       c.Props(),
				Value:       c.Value(),
				EventOnly:   c.EventOnly(),
			})
		}

		targets := svc.LinkedServices()
		targetKeys := make([]string, 0, len(targets))
		for _, target := range targets {
			targetKeys = append(targetKeys, target.Key().String())
		}
		linked[svc.Key().String()] = targetKeys

		serviceRecords = append(serviceRecords, ServiceRecord{
			DisplayName:     svc.DisplayName(),
			Type:            svc.Type(),
			Subtype:         svc.Subtype(),
			Characteristics: charRecords,
		})
	}

	return &AccessoryRecord{
		Plugin:         a.PluginName(),
		Platform:       a.PlatformName(),
		DisplayName:    a.DisplayName(),
		ID:             a.ID(),
		Category:       a.Category(),
		Context:        a.Context(),
		LinkedServices: linked,
		Services:       serviceRecords,
	}
}

// Deserialize reconstructs an accessory from a flattened record. The
// record is trusted: characteristics are sideloaded in bulk without
// per-item validation. Reachability is always false on a restored
// accessory until proven otherwise. Linked-service keys that resolve to
// no service in the record are silently skipped; a snapshot may
// reference services removed since it was taken and reconstruction must
// not fail over a stale link.
func Deserialize(rec *AccessoryRecord) (*accessory.Accessory, error) {
	a, err := accessory.New(rec.DisplayName, rec.ID, rec.Category)
	if err != nil {
		return nil, err
	}

	a.SetPluginName(rec.Plugin)
	a.SetPlatformName(rec.Platform)
	a.SetContext(rec.Context)

	services := make([]*accessory.Service, 0, len(rec.Services))
	byKey := make(map[string]*accessory.Service, len(rec.Services))

	for _, sr := range rec.Services {
		svc := accessory.NewService(sr.DisplayName, sr.Type, sr.Subtype)

		characteristics := make([]*accessory.Characteristic, 0, len(sr.Characteristics))
		for _, cr := range sr.Characteristics {
			c := accessory.NewCharacteristic(cr.DisplayName, cr.Type, cr.Props)
			c.SetEventOnly(cr.EventOnly)
			c.SetValue(cr.Value)
			characteristics = append(characteristics, c)
		}
		svc.SetCharacteristics(characteristics)

		services = append(services, svc)
		key := svc.Key().String()
		if _, exists := byKey[key]; !exists {
			byKey[key] = svc
		}
	}

	for sourceKey, targetKeys := range rec.LinkedServices {
		source, ok := byKey[sourceKey]
		if !ok {
			continue
		}
		for _, targetKey := range targetKeys {
			if target, ok := byKey[targetKey]; ok {
				source.AddLinkedService(target)
			}
		}
	}

	a.SetServices(services)
	return a, nil
}
