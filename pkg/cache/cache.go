// Package cache provides the response cache used by the arcraiders client.
//
// # Overview
//
// A [Store] maps string keys to fully decoded API results. Two stores are
// provided:
//
//   - [Memory]: in-process store with a fixed per-entry time-to-live
//   - [Null]: a store that never retains anything (caching disabled)
//
// Keys are built with [Key], which renders request parameters as canonical
// JSON so that logically identical requests share one entry regardless of
// the order in which their parameters were assembled.
//
// # Expiry
//
// [Memory] evicts lazily. An entry past its expiry is treated as absent by
// [Memory.Get] and removed at that point; nothing sweeps in the background.
// There is no capacity bound and no LRU policy, so the number of distinct
// keys grows for the life of the store. Callers that issue an unbounded set
// of distinct queries should call [Store.Clear] periodically.
package cache

// Store is a key-value cache of decoded API results.
//
// Values are stored and returned by reference; callers must treat returned
// values as read-only.
type Store interface {
	// Get returns the value stored under key and true, or nil and false when
	// the key is absent or expired.
	Get(key string) (any, bool)

	// Set stores value under key, replacing any previous entry.
	Set(key string, value any)

	// Clear removes all entries.
	Clear()
}
