package cache

import (
	"time"

	"agedcache/internal/clock"
)

// Config controls how a Cache observes time.
//
// A nil Clock means clock.System, the process wall clock.
type Config struct {
	Clock clock.Clock
}

// Cache is an in-memory key–value store where every entry expires after its
// own retention period.
//
// Expiry is lazy. Get rejects a stale entry but leaves it in place;
// Size and IsEmpty sweep the whole map before answering.
//
// Cache is not safe for concurrent use.
//
// With K = any a nil key is valid. Keys whose dynamic type is not comparable
// (slices, maps, funcs) panic on map access, as for any interface-keyed map.
type Cache[K comparable, V any] struct {
	clock   clock.Clock
	entries map[K]entry[V]
}

// entry is the value stored per key.
//
// An entry is live while now-insertedAt < retentionMillis.
type entry[V any] struct {
	value           V
	insertedAt      int64
	retentionMillis int64
}

func (e entry[V]) expired(now int64) bool {
	return now-e.insertedAt >= e.retentionMillis
}

// New constructs an empty cache.
//
// New never returns a nil Cache.
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.System{}
	}
	return &Cache[K, V]{
		clock:   clk,
		entries: make(map[K]entry[V]),
	}
}

// Put writes/overwrites key.
//
// Overwriting resets both the value and the timing. retentionMillis is not
// validated: zero or negative makes the entry expired on the next access.
func (c *Cache[K, V]) Put(key K, value V, retentionMillis int64) {
	c.entries[key] = entry[V]{
		value:           value,
		insertedAt:      c.clock.NowMillis(),
		retentionMillis: retentionMillis,
	}
}

// PutFor is Put with a time.Duration retention, truncated to milliseconds.
func (c *Cache[K, V]) PutFor(key K, value V, retention time.Duration) {
	c.Put(key, value, retention.Milliseconds())
}

// Get reads key.
//
// The boolean is false when the key is unknown or its retention has elapsed;
// the returned value is then the zero V. An expired entry is not removed here.
//
// Complexity: O(1), independent of how many other entries are stale.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok || e.expired(c.clock.NowMillis()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Size sweeps expired entries and returns how many remain.
//
// Complexity: O(n).
func (c *Cache[K, V]) Size() int {
	c.deleteExpired(c.clock.NowMillis())
	return len(c.entries)
}

// IsEmpty sweeps expired entries and reports whether none remain.
// It always agrees with Size() == 0 for the same clock reading.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Size() == 0
}
