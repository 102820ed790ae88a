// Package serialize converts accessory models to and from flattened,
// plain-data records.
//
// The record format has no native reference type, so object identity is
// preserved through canonical composite keys (service type UUID plus
// subtype): linkedServices maps each service's key to the ordered keys
// of its linked services. Serialize and Deserialize form a lossless
// round trip over everything a bridge needs to rebuild the accessory
// after a restart; attachment state and event subscriptions are
// deliberately not captured.
//
// Records marshal to JSON for file persistence (see the cache package)
// and to deterministic CBOR (Encode/Decode) for compact transfer across
// a process boundary.
package serialize
