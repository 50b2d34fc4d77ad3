package neopixel

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

var errInterrupted = errors.New("animation was interrupted")

// Welcome walks the given colours around the ring while the billboard boots. Each step lights one more LED
// in the current colour, and once the ring is full the next colour takes over the same way. Without colours
// the ring steps through the colour wheel instead. It runs until another effect or Stop takes over.
func (l *LedController) Welcome(colors []uint32) error {
	leds := l.ws.Leds(0)
	if len(leds) == 0 {
		return nil
	}

	done := l.interruptor.Interrupt()
	defer done()
	defer l.clear()

	log.Debugf("Welcome in %d customer colours", len(colors))
	tick := time.NewTicker(40 * time.Millisecond)
	defer tick.Stop()

	for step := 0; ; step++ {
		if l.interruptor.IsInterrupted() {
			return errInterrupted
		}

		round := step / len(leds)
		c := getRGB(round * 32)
		if len(colors) > 0 {
			c = colors[round%len(colors)]
		}
		leds[step%len(leds)] = c
		if err := l.ws.Render(); err != nil {
			return err
		}

		<-tick.C
	}
}

// Breathe fades color in and out in the background until another effect or Stop takes over.
func (l *LedController) Breathe(color uint32) {
	done := l.interruptor.Interrupt()

	go func() {
		defer done()
		defer l.clear()
		for {
			err := l.singleBreath(color)
			if err != nil {
				log.Debug("Stopping breathing: ", err)
				break
			}
		}
	}()
}

func (l *LedController) singleBreath(color uint32) error {
	light := uint32(0)
	increase := true
	log.Debugf("Breathing color: %06x", color)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		if l.interruptor.IsInterrupted() {
			return errInterrupted
		}

		if err := l.setColor(withBrightness(color, light)); err != nil {
			return err
		}

		if increase {
			light++
			if light > 100 {
				increase = false
			}
		} else {
			if light == 0 {
				break
			}
			light--
		}

		<-tick.C
	}
	return nil
}
