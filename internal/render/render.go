// Package render presents messages on the display. Every strategy blocks until its duration has
// passed; a frame that has started is always finished.
package render

import (
	"time"

	"github.com/callebjorkell/billboard/internal/billboard"
	"github.com/callebjorkell/billboard/internal/clock"
	"github.com/callebjorkell/billboard/internal/glyph"
	"github.com/callebjorkell/billboard/internal/lcd"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultScrollDelay = 400 * time.Millisecond
	DefaultBlinkDelay  = 500 * time.Millisecond
)

// Display is the part of the LCD driver the strategies need.
type Display interface {
	Clear()
	Home()
	SendData(code byte)
	WriteText(codes []byte)
}

type Renderer struct {
	ScrollDelay time.Duration
	BlinkDelay  time.Duration

	display Display
	clock   clock.Clock
}

func New(d Display, c clock.Clock) *Renderer {
	return &Renderer{
		ScrollDelay: DefaultScrollDelay,
		BlinkDelay:  DefaultBlinkDelay,
		display:     d,
		clock:       c,
	}
}

// Show renders m for duration d using the strategy of its mode.
func (r *Renderer) Show(m billboard.Message, d time.Duration) {
	log.Infof("Showing %q (mode: %v, customer: %s)", m.Text, m.Mode, m.Customer)

	switch m.Mode {
	case billboard.ModeScroll:
		frames := r.Scroll(m.Text, d)
		log.Debugf("Scrolled %d frames", frames)
	case billboard.ModeBlink:
		phases := r.Blink(m.Text, d)
		log.Debugf("Blinked %d phases", phases)
	default:
		r.Static(m.Text)
		r.clock.Sleep(d)
	}
}

// Static writes text once from the top left cell. Text longer than a row continues on the second row,
// anything beyond that is not shown.
func (r *Renderer) Static(text string) {
	r.display.Clear()
	r.display.Home()
	r.display.WriteText(glyph.Encode(text))
}

// Scroll moves text from right to left across the first row, one cell per frame, until d has passed.
// The text enters from beyond the right edge and starts over once it has left on the left. It returns
// the number of frames drawn.
func (r *Renderer) Scroll(text string, d time.Duration) int {
	start := r.clock.Millis()
	codes := glyph.Encode(text)
	offset := lcd.Width
	frames := 0

	for r.running(start, d) {
		r.display.Clear()
		r.display.Home()
		for col := 0; col < lcd.Width; col++ {
			i := col - offset
			if i >= 0 && i < len(codes) {
				r.display.SendData(codes[i])
			} else {
				r.display.SendData(' ')
			}
		}

		offset--
		if offset < -len(codes) {
			offset = lcd.Width
		}
		frames++
		r.clock.Sleep(r.ScrollDelay)
	}
	return frames
}

// Blink alternates between showing text and a blank display until d has passed, starting visible. It
// returns the number of phases drawn.
func (r *Renderer) Blink(text string, d time.Duration) int {
	start := r.clock.Millis()
	codes := glyph.Encode(text)
	visible := true
	phases := 0

	for r.running(start, d) {
		r.display.Clear()
		if visible {
			r.display.Home()
			r.display.WriteText(codes)
		}
		visible = !visible
		phases++
		r.clock.Sleep(r.BlinkDelay)
	}
	return phases
}

func (r *Renderer) running(start uint32, d time.Duration) bool {
	return clock.Since(r.clock, start) < uint32(d/time.Millisecond)
}
