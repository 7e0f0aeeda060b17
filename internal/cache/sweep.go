package cache

// deleteExpired removes every entry expired at now and returns how many went.
//
// One reading of now is used for the whole pass, so a sweep never keeps an
// entry that a Get at the same instant would reject.
func (c *Cache[K, V]) deleteExpired(now int64) int {
	removed := 0
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
