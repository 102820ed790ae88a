// Package ipc sends fire-and-forget event notifications to a parent
// process over a plain-data channel (newline-delimited JSON).
//
// A bridge that runs its plugins as child processes uses this channel to
// surface events the parent must react to, such as an accessory identify
// request arriving while no plugin-level handler is registered. Delivery
// is best-effort: Notify never blocks the caller and never reports an
// error, messages are dropped when the outbound buffer is full.
package ipc
