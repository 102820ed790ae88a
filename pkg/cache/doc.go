// Package cache persists flattened accessory records to a JSON file so
// a bridge can restore its accessories after a restart. The file layout
// is a versioned envelope around serialize.AccessoryRecord entries.
package cache
