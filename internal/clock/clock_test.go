package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	m := NewManual(10)
	assert.Equal(t, int64(10), m.NowMillis())

	assert.Equal(t, int64(15), m.AdvanceMillis(5))
	assert.Equal(t, int64(265), m.Advance(250*time.Millisecond))

	// Sub-millisecond remainders are dropped.
	assert.Equal(t, int64(266), m.Advance(1900*time.Microsecond))

	m.Set(3)
	assert.Equal(t, int64(3), m.NowMillis())
}

func TestManualZeroValue(t *testing.T) {
	var m Manual
	assert.Equal(t, int64(0), m.NowMillis())
	m.AdvanceMillis(7)
	assert.Equal(t, int64(7), m.NowMillis())
}

func TestFunc(t *testing.T) {
	calls := 0
	c := Func(func() int64 {
		calls++
		return 42
	})
	assert.Equal(t, int64(42), c.NowMillis())
	assert.Equal(t, 1, calls)
}

func TestSystemTracksWallClock(t *testing.T) {
	before := time.Now().UnixMilli()
	got := System{}.NowMillis()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

var (
	_ Clock = System{}
	_ Clock = Func(nil)
	_ Clock = (*Manual)(nil)
)
