// Command lightbulb-example demonstrates the accessory model lifecycle
// as seen by a bridge plugin.
//
// This example shows how to:
//   - Create an accessory with services and characteristics
//   - Attach a protocol collaborator and mirror mutations onto it
//   - Handle identify requests, relaying to a parent process channel
//   - Persist the accessory to a cache file and restore it
//
// Usage:
//
//	go run ./cmd/lightbulb-example
//
// The collaborator here is a stub printing mirrored calls; a real bridge
// supplies the HAP protocol layer instead.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hap-bridge/accessory-go/pkg/accessory"
	"github.com/hap-bridge/accessory-go/pkg/cache"
	"github.com/hap-bridge/accessory-go/pkg/ipc"
	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.Println("Accessory Model Example")
	log.Println("=======================")

	acc, err := accessory.New("Living Room Lamp", "6d3a8f0c-9c5a-4d7e-8b1f-2f6a0c3d9e41", accessory.CategoryLightbulb)
	if err != nil {
		log.Fatalf("Failed to create accessory: %v", err)
	}
	acc.SetPluginName("plugin-example-lightbulb")

	light := accessory.NewService("Light", "00000043-0000-1000-8000-0026BB765291", "")
	on := accessory.NewCharacteristic("On", "00000025-0000-1000-8000-0026BB765291", map[string]any{"format": "bool"})
	on.SetValue(false)
	light.AddCharacteristic(on)
	if _, err := acc.AddService(light); err != nil {
		log.Fatalf("Failed to add service: %v", err)
	}

	// Identify requests without a subscriber are acked immediately; with
	// this subscriber they are handled locally and relayed to the parent.
	notifier := ipc.NewProcessNotifier(os.Stdout)
	defer notifier.Close()
	acc.SetParentNotifier(notifier)

	acc.OnIdentify(func(req accessory.IdentifyRequest) {
		log.Printf("Identify requested (paired=%v): blinking", req.Paired)
		req.Done()
	})

	// Attach the (stub) protocol twin.
	twin := &printingCollaborator{}
	if err := acc.Prepare(func(name, id string) (accessory.Collaborator, error) {
		log.Printf("Constructing collaborator for %s (%s)", name, id)
		return twin, nil
	}); err != nil {
		log.Fatalf("Failed to prepare collaborator: %v", err)
	}

	acc.UpdateReachability(true)

	// Simulate an identify signal from the protocol layer.
	twin.identify(true, func() { log.Println("Identify acknowledged") })

	// Persist and restore.
	path := filepath.Join(os.TempDir(), "example-cachedAccessories.json")
	store := cache.NewStore(path)
	if err := store.Save([]*serialize.AccessoryRecord{serialize.Serialize(acc)}); err != nil {
		log.Fatalf("Failed to save cache: %v", err)
	}
	log.Printf("Saved accessory cache to %s", path)

	records, err := store.Load()
	if err != nil {
		log.Fatalf("Failed to load cache: %v", err)
	}
	restored, err := serialize.Deserialize(records[0])
	if err != nil {
		log.Fatalf("Failed to restore accessory: %v", err)
	}
	log.Printf("Restored %q with %d services (reachable=%v)",
		restored.DisplayName(), len(restored.Services()), restored.Reachable())
}

// printingCollaborator is a stand-in for the HAP protocol layer.
type printingCollaborator struct {
	identify func(paired bool, ack func())
}

func (c *printingCollaborator) AddService(svc *accessory.Service) error {
	fmt.Printf("collaborator: add service %s\n", svc.Key())
	return nil
}

func (c *printingCollaborator) RemoveService(svc *accessory.Service) {
	fmt.Printf("collaborator: remove service %s\n", svc.Key())
}

func (c *printingCollaborator) SetServices(services []*accessory.Service) {
	fmt.Printf("collaborator: sideload %d services\n", len(services))
}

func (c *printingCollaborator) SetCategory(category accessory.Category) {
	fmt.Printf("collaborator: category %s\n", category)
}

func (c *printingCollaborator) UpdateReachability(reachable bool) {
	fmt.Printf("collaborator: reachable %v\n", reachable)
}

func (c *printingCollaborator) OnIdentify(fn func(paired bool, ack func())) {
	c.identify = fn
}
