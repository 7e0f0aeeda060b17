package commands

import (
	"fmt"
	"io"
	"time"

	"agedcache/internal/cache"
	"agedcache/internal/clock"
)

const absent = "<absent>"

// observer runs cache operations and prints one line per call, stamped with
// the clock reading the cache saw.
type observer struct {
	out   io.Writer
	clock clock.Clock
	cache *cache.Cache[string, string]
	// origin is subtracted from readings so output starts near t=0.
	origin int64
}

func newObserver(out io.Writer, clk clock.Clock, origin int64) *observer {
	return &observer{
		out:    out,
		clock:  clk,
		cache:  cache.New[string, string](cache.Config{Clock: clk}),
		origin: origin,
	}
}

func (o *observer) printf(format string, args ...any) {
	stamp := o.clock.NowMillis() - o.origin
	fmt.Fprintf(o.out, "t=%d "+format+"\n", append([]any{stamp}, args...)...)
}

func (o *observer) put(key, value string, retention time.Duration) {
	o.cache.PutFor(key, value, retention)
	o.printf("put %s=%s retention=%s", key, value, retention)
}

func (o *observer) get(key string) (string, bool) {
	v, ok := o.cache.Get(key)
	shown := v
	if !ok {
		shown = absent
	}
	o.printf("get %s -> %s", key, shown)
	return v, ok
}

func (o *observer) size() int {
	n := o.cache.Size()
	o.printf("size -> %d", n)
	return n
}

func (o *observer) empty() bool {
	e := o.cache.IsEmpty()
	o.printf("empty -> %t", e)
	return e
}
