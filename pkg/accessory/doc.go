// Package accessory implements the in-memory model of a single HomeKit
// accessory as used by a plugin bridge.
//
// # Model Hierarchy
//
// The model is a 3-level aggregate:
//
//	Accessory > Service > Characteristic
//
// An Accessory is the aggregate root holding identity (display name and
// UUID), category, reachability and an ordered service list. Services
// group characteristics and may reference other services on the same
// accessory as linked services. The first service is always the seeded
// accessory-information service carrying name, manufacturer, model and
// serial-number metadata.
//
// # Identity
//
// Services are addressed by a composite key: type UUID plus optional
// subtype (ServiceKey). Within one accessory no two services may share
// both; adding a second service of an already-present type requires a
// distinct subtype, otherwise AddService fails with a
// DuplicateIdentityError. The canonical string form of the key is the
// only address space used for linked-service data in flattened records
// (see the serialize package).
//
// # Collaborator Mirroring
//
// The protocol layer (pairing, transport, advertisement) lives behind
// the Collaborator interface. Prepare attaches a collaborator built by a
// CollaboratorFactory, sideloads the current service list and subscribes
// to the identify signal; from then on AddService, RemoveService and
// UpdateReachability mirror every mutation so the external accessory
// database never drifts from this model.
//
// # Identify Relay
//
// Identify requests arrive asynchronously from the collaborator. With
// local subscribers registered through OnIdentify, the request is
// delivered locally and forwarded to a parent process through the ipc
// package; without any, it is acknowledged immediately.
package accessory
