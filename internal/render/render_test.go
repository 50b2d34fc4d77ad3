package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/callebjorkell/billboard/internal/billboard"
	"github.com/callebjorkell/billboard/internal/clock"
	"github.com/callebjorkell/billboard/internal/glyph"
	"github.com/callebjorkell/billboard/internal/lcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameRecorder collects what was written between two clears.
type frameRecorder struct {
	frames [][]byte
	homes  int
}

func (f *frameRecorder) Clear() { f.frames = append(f.frames, []byte{}) }
func (f *frameRecorder) Home()  { f.homes++ }

func (f *frameRecorder) SendData(code byte) {
	f.frames[len(f.frames)-1] = append(f.frames[len(f.frames)-1], code)
}

func (f *frameRecorder) WriteText(codes []byte) {
	for _, c := range codes {
		f.SendData(c)
	}
}

func TestStatic(t *testing.T) {
	rec := &frameRecorder{}
	r := New(rec, clock.NewFake(0))
	r.Static("Mysterier? Långben")

	require.Len(t, rec.frames, 1)
	assert.Equal(t, glyph.Encode("Mysterier? Långben"), rec.frames[0])
	assert.Equal(t, 1, rec.homes)
}

func TestShowStaticHoldsForDuration(t *testing.T) {
	rec := &frameRecorder{}
	f := clock.NewFake(0)
	r := New(rec, f)
	r.Show(billboard.Message{Text: "Synas här? IOTs", Mode: billboard.ModeStatic}, 20*time.Second)

	assert.Len(t, rec.frames, 1)
	assert.Equal(t, []time.Duration{20 * time.Second}, f.Slept())
}

func TestScrollFrames(t *testing.T) {
	rec := &frameRecorder{}
	f := clock.NewFake(0)
	r := New(rec, f)

	frames := r.Scroll("ab", 5*DefaultScrollDelay)

	assert.Equal(t, 5, frames)
	require.Len(t, rec.frames, 5)
	assert.Equal(t, []byte("                "), rec.frames[0])
	assert.Equal(t, []byte("               a"), rec.frames[1])
	assert.Equal(t, []byte("              ab"), rec.frames[2])
	assert.Equal(t, []byte("             ab "), rec.frames[3])
	assert.Equal(t, []byte("            ab  "), rec.frames[4])
	for _, frame := range rec.frames {
		assert.Len(t, frame, lcd.Width)
	}
}

func TestScrollCycleLength(t *testing.T) {
	const text = "Köp bil hos Harry"
	length := len(glyph.Encode(text))
	require.Equal(t, 17, length)

	rec := &frameRecorder{}
	r := New(rec, clock.NewFake(0))
	// two full cycles of the offset, 16 down to -length
	cycle := length + lcd.Width + 1
	frames := r.Scroll(text, time.Duration(2*cycle)*DefaultScrollDelay)
	require.Equal(t, 2*cycle, frames)

	distinct := map[string]bool{}
	for _, frame := range rec.frames[:cycle] {
		distinct[string(frame)] = true
	}
	assert.Len(t, distinct, length+lcd.Width)

	for i := 0; i < cycle; i++ {
		assert.Equal(t, rec.frames[i], rec.frames[i+cycle], "frame %d", i)
	}

	// the text has fully left on the left before it starts over
	assert.Equal(t, bytes.Repeat([]byte{' '}, lcd.Width), rec.frames[cycle-1])
}

func TestScrollNeverSplitsGlyphs(t *testing.T) {
	rec := &frameRecorder{}
	r := New(rec, clock.NewFake(0))
	r.Scroll("åäö", 10*DefaultScrollDelay)

	for i, frame := range rec.frames {
		for _, c := range frame {
			assert.NotEqual(t, byte(0xC3), c, "frame %d shows a raw UTF-8 byte", i)
		}
	}
	assert.Equal(t, []byte("             \x00\x01\x02"), rec.frames[3])
}

func TestScrollFinishesStartedFrame(t *testing.T) {
	rec := &frameRecorder{}
	r := New(rec, clock.NewFake(0))

	// 401ms means a second frame starts at 400ms and runs to completion
	frames := r.Scroll("x", DefaultScrollDelay+time.Millisecond)
	assert.Equal(t, 2, frames)
	assert.Len(t, rec.frames[1], lcd.Width)
}

func TestBlink(t *testing.T) {
	rec := &frameRecorder{}
	f := clock.NewFake(0)
	r := New(rec, f)

	phases := r.Blink("Hederlige Harrys", 4*DefaultBlinkDelay)

	assert.Equal(t, 4, phases)
	require.Len(t, rec.frames, 4)
	assert.Equal(t, []byte("Hederlige Harrys"), rec.frames[0])
	assert.Empty(t, rec.frames[1])
	assert.Equal(t, []byte("Hederlige Harrys"), rec.frames[2])
	assert.Empty(t, rec.frames[3])
	for _, s := range f.Slept() {
		assert.Equal(t, DefaultBlinkDelay, s)
	}
}

func TestZeroDurationDrawsNothing(t *testing.T) {
	rec := &frameRecorder{}
	r := New(rec, clock.NewFake(0))

	assert.Zero(t, r.Scroll("x", 0))
	assert.Zero(t, r.Blink("x", 0))
	assert.Empty(t, rec.frames)
}

func TestShowDispatch(t *testing.T) {
	tt := []struct {
		mode   billboard.Mode
		frames int
	}{
		{billboard.ModeStatic, 1},
		{billboard.ModeScroll, 3},
		{billboard.ModeBlink, 2},
	}

	for _, tc := range tt {
		t.Run(tc.mode.String(), func(t *testing.T) {
			rec := &frameRecorder{}
			r := New(rec, clock.NewFake(0))
			r.ScrollDelay = 100 * time.Millisecond
			r.BlinkDelay = 150 * time.Millisecond
			r.Show(billboard.Message{Text: "hej", Mode: tc.mode}, 300*time.Millisecond)
			assert.Len(t, rec.frames, tc.frames)
		})
	}
}
