// Package clock provides the millisecond tick source and the blocking delays the display loop runs on.
package clock

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Sleeper blocks the caller for at least the given duration.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Clock is a monotonic millisecond counter together with a blocking delay.
type Clock interface {
	Sleeper
	Millis() uint32
}

// Since returns the milliseconds elapsed since start, correct across counter wrap-around.
func Since(c Clock, start uint32) uint32 {
	return c.Millis() - start
}

// Ticker counts milliseconds from a single producer goroutine. Every tick stores the time elapsed since
// the ticker started, so ticks dropped while the goroutine was not scheduled are caught up on the next one.
// Reads are atomic so the counter can be polled from the display loop while it is being updated.
type Ticker struct {
	ms     atomic.Uint32
	origin time.Time
	period time.Duration
	stop   context.CancelFunc
}

// NewTicker starts a counter updated once per millisecond until ctx is done or Stop is called.
func NewTicker(ctx context.Context) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		origin: time.Now(),
		period: time.Millisecond,
		stop:   cancel,
	}
	go t.run(ctx)
	return t
}

func (t *Ticker) run(ctx context.Context) {
	log.Debugf("Starting tick source with period %v", t.period)
	tick := time.NewTicker(t.period)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			t.update(time.Now())
		case <-ctx.Done():
			t.update(time.Now())
			log.Debug("Tick source stopped.")
			return
		}
	}
}

// update stores the whole milliseconds between origin and now. The counter wraps after about 49 days.
func (t *Ticker) update(now time.Time) {
	t.ms.Store(uint32(now.Sub(t.origin) / time.Millisecond))
}

// Millis returns the milliseconds counted so far.
func (t *Ticker) Millis() uint32 {
	return t.ms.Load()
}

// Sleep blocks for at least d.
func (t *Ticker) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Stop halts the counter. Millis keeps returning the last value.
func (t *Ticker) Stop() {
	t.stop()
}
