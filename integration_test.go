package accessorygo_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hap-bridge/accessory-go/pkg/accessory"
	"github.com/hap-bridge/accessory-go/pkg/cache"
	"github.com/hap-bridge/accessory-go/pkg/ipc"
	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

// memCollaborator is a minimal in-memory protocol twin tracking mirrored
// mutations, standing in for the HAP layer.
type memCollaborator struct {
	mu        sync.Mutex
	services  []*accessory.Service
	category  accessory.Category
	reachable bool
	identify  func(paired bool, ack func())
}

func (m *memCollaborator) AddService(svc *accessory.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = append(m.services, svc)
	return nil
}

func (m *memCollaborator) RemoveService(svc *accessory.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.services {
		if existing == svc {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return
		}
	}
}

func (m *memCollaborator) SetServices(services []*accessory.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = services
}

func (m *memCollaborator) SetCategory(category accessory.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.category = category
}

func (m *memCollaborator) UpdateReachability(reachable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reachable = reachable
}

func (m *memCollaborator) OnIdentify(fn func(paired bool, ack func())) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identify = fn
}

func (m *memCollaborator) serviceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.services)
}

// TestLifecycle walks an accessory through the full bridge lifecycle:
// construction, collaborator attachment, mutation mirroring, identify
// relay, persistence and restoration.
func TestLifecycle(t *testing.T) {
	acc, err := accessory.New("Garden Camera", "0e43362a-0cba-4a8e-9a75-3d0e1a4e6157", accessory.CategoryCamera)
	require.NoError(t, err)
	acc.SetPluginName("plugin-garden")
	acc.SetPlatformName("GardenPlatform")
	acc.SetContext(map[string]any{"host": "10.0.0.12"})

	stream, err := acc.AddService(accessory.NewService("Stream", "stream-type", ""))
	require.NoError(t, err)
	motion, err := acc.AddService(accessory.NewService("Motion", "motion-type", ""))
	require.NoError(t, err)
	stream.AddLinkedService(motion)

	// Attach the protocol twin.
	twin := &memCollaborator{}
	require.NoError(t, acc.Prepare(func(name, id string) (accessory.Collaborator, error) {
		return twin, nil
	}))
	require.Equal(t, 3, twin.serviceCount())
	require.Equal(t, accessory.CategoryCamera, twin.category)

	// Mutations mirror incrementally.
	doorbell, err := acc.AddService(accessory.NewService("Doorbell", "doorbell-type", ""))
	require.NoError(t, err)
	require.Equal(t, 4, twin.serviceCount())

	acc.RemoveService(doorbell)
	require.Equal(t, 3, twin.serviceCount())

	acc.UpdateReachability(true)
	require.True(t, twin.reachable)

	// Identify relays to the parent process when a subscriber exists.
	var parentOut bytes.Buffer
	notifier := ipc.NewProcessNotifier(&parentOut)
	acc.SetParentNotifier(notifier)

	identified := false
	acc.OnIdentify(func(req accessory.IdentifyRequest) {
		identified = true
		req.Done()
	})

	acked := false
	twin.identify(true, func() { acked = true })
	require.True(t, identified)
	require.True(t, acked)

	notifier.Close()
	var msg ipc.Message
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(parentOut.String())), &msg))
	require.Equal(t, ipc.EventIdentify, msg.Event)
	require.Equal(t, true, msg.Data)

	// Persist, restore, verify.
	store := cache.NewStore(filepath.Join(t.TempDir(), "cachedAccessories.json"))
	require.NoError(t, store.Save([]*serialize.AccessoryRecord{serialize.Serialize(acc)}))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)

	restored, err := serialize.Deserialize(records[0])
	require.NoError(t, err)

	require.Equal(t, acc.DisplayName(), restored.DisplayName())
	require.Equal(t, acc.ID(), restored.ID())
	require.Equal(t, acc.Category(), restored.Category())
	require.Equal(t, map[string]any{"host": "10.0.0.12"}, restored.Context())
	require.False(t, restored.Reachable(), "restored accessories start unreachable")
	require.Len(t, restored.Services(), 3)

	restoredStream := restored.GetService(accessory.ByType("stream-type"))
	require.NotNil(t, restoredStream)
	linked := restoredStream.LinkedServices()
	require.Len(t, linked, 1)
	require.Equal(t, accessory.ServiceKey{Type: "motion-type"}, linked[0].Key())
}
