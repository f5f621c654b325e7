// Package clock lets use cases take the current time as a dependency.
package clock

import (
	"sync/atomic"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

// Now is UTC truncated to microseconds, the precision PostgreSQL stores,
// so a value read back compares equal to the one written.
func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// MockClock only moves when told to. Safe for concurrent use.
type MockClock struct {
	now atomic.Pointer[time.Time]
}

func NewMockClock(t time.Time) *MockClock {
	c := &MockClock{}
	c.Set(t)
	return c
}

func (c *MockClock) Now() time.Time {
	return *c.now.Load()
}

func (c *MockClock) Set(t time.Time) {
	c.now.Store(&t)
}

// Add advances the clock by d.
func (c *MockClock) Add(d time.Duration) {
	for {
		cur := c.now.Load()
		next := cur.Add(d)
		if c.now.CompareAndSwap(cur, &next) {
			return
		}
	}
}
