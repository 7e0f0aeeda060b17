// Package cache implements a single-process, time-bounded key–value store.
//
// Goals for this package:
//   - Every entry carries its own retention period, fixed at insertion
//   - Time is read only through an injected clock.Clock, so tests drive it
//   - Put/Get stay O(1); stale entries are swept lazily by Size/IsEmpty
//   - No goroutines, no locks: the caller owns synchronization
package cache
