package clock

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerCounts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tick := NewTicker(ctx)
	start := tick.Millis()
	tick.Sleep(50 * time.Millisecond)
	assert.Greater(t, Since(tick, start), uint32(0))

	tick.Stop()
	<-time.After(10 * time.Millisecond)
	stopped := tick.Millis()
	<-time.After(20 * time.Millisecond)
	assert.Equal(t, stopped, tick.Millis())
}

func TestTickerFollowsWallTime(t *testing.T) {
	tick := NewTicker(context.Background())
	defer tick.Stop()

	wall := time.Now()
	start := tick.Millis()
	time.Sleep(500 * time.Millisecond)
	counted := Since(tick, start)
	elapsed := uint32(time.Since(wall) / time.Millisecond)

	assert.InDelta(t, elapsed, counted, 20, "counted %d ms over %d ms", counted, elapsed)
}

func TestTickerKeepsUpUnderLoad(t *testing.T) {
	var busy atomic.Bool
	busy.Store(true)
	defer busy.Store(false)
	for i := 0; i < 4*runtime.GOMAXPROCS(0); i++ {
		go func() {
			for busy.Load() {
			}
		}()
	}

	tick := NewTicker(context.Background())
	defer tick.Stop()

	wall := time.Now()
	start := tick.Millis()
	time.Sleep(time.Second)
	counted := Since(tick, start)
	elapsed := uint32(time.Since(wall) / time.Millisecond)

	// a busy scheduler may delay the last update, but ticks it dropped must not be lost
	assert.GreaterOrEqual(t, counted, elapsed*8/10, "counted %d ms over %d ms", counted, elapsed)
	assert.LessOrEqual(t, counted, elapsed+1)
}

func TestTickerCatchesUpMissedTicks(t *testing.T) {
	origin := time.Now()
	tick := &Ticker{origin: origin}

	tick.update(origin.Add(2500*time.Millisecond + 999*time.Microsecond))
	assert.Equal(t, uint32(2500), tick.Millis())

	tick.update(origin.Add(2501 * time.Millisecond))
	assert.Equal(t, uint32(2501), tick.Millis())
}

func TestSinceWrapsAround(t *testing.T) {
	f := NewFake(math.MaxUint32 - 4)
	start := f.Millis()
	f.Advance(10 * time.Millisecond)
	assert.Equal(t, uint32(10), Since(f, start))
}

func TestFakeRecordsSleeps(t *testing.T) {
	f := NewFake(0)
	f.Sleep(2 * time.Millisecond)
	f.Sleep(50 * time.Microsecond)
	f.Advance(time.Second)

	assert.Equal(t, []time.Duration{2 * time.Millisecond, 50 * time.Microsecond}, f.Slept())
	assert.Equal(t, uint32(1002), f.Millis())

	f.Reset()
	assert.Empty(t, f.Slept())
}
