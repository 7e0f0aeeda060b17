// Package clock supplies the time sources the cache reads "now" from.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock reports the current time in milliseconds since an epoch.
//
// Implementations must be side-effect free from the caller's point of view.
type Clock interface {
	NowMillis() int64
}

// System reads the wall clock.
type System struct{}

func (System) NowMillis() int64 { return time.Now().UnixMilli() }

// Func adapts a plain function to Clock.
type Func func() int64

func (f Func) NowMillis() int64 { return f() }

// Manual is a clock that only moves when told to.
//
// The zero value reads 0. Manual is safe to share between goroutines.
type Manual struct {
	now atomic.Int64
}

// NewManual returns a Manual clock reading start.
func NewManual(start int64) *Manual {
	m := &Manual{}
	m.now.Store(start)
	return m
}

func (m *Manual) NowMillis() int64 { return m.now.Load() }

// Set moves the clock to an absolute reading. Moving backwards is allowed.
func (m *Manual) Set(ms int64) { m.now.Store(ms) }

// AdvanceMillis moves the clock forward by ms and returns the new reading.
func (m *Manual) AdvanceMillis(ms int64) int64 { return m.now.Add(ms) }

// Advance moves the clock forward by d, truncated to whole milliseconds.
func (m *Manual) Advance(d time.Duration) int64 { return m.AdvanceMillis(d.Milliseconds()) }
