package clock

import (
	"sync"
	"time"
)

// Fake is a Clock whose time only moves when Sleep or Advance is called.
type Fake struct {
	mu    sync.Mutex
	now   time.Duration
	slept []time.Duration
}

// NewFake returns a fake clock starting at ms milliseconds.
func NewFake(ms uint32) *Fake {
	return &Fake{now: time.Duration(ms) * time.Millisecond}
}

func (f *Fake) Millis() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint32(f.now / time.Millisecond)
}

func (f *Fake) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now += d
	f.slept = append(f.slept, d)
}

// Advance moves the clock forward without recording a sleep.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now += d
}

// Slept returns every delay requested so far, in order.
func (f *Fake) Slept() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.slept...)
}

// Reset forgets the recorded delays.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slept = nil
}
