// Package neopixel lights a WS281x LED ring in the colour of the customer whose message is on display.
package neopixel

import (
	log "github.com/sirupsen/logrus"
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// Options describe the attached ring.
type Options struct {
	Brightness int `yaml:"brightness"`
	Count      int `yaml:"count"`
}

var DefaultOptions = Options{
	Brightness: 90,
	Count:      24,
}

type LedController struct {
	ws          wsEngine
	interruptor Interruptor
}

func (l *LedController) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	return l.ws.Render()
}

func (l *LedController) clear() error {
	return l.setColor(0)
}

// Stop interrupts a running effect and turns all LEDs off.
func (l *LedController) Stop() {
	done := l.interruptor.Interrupt()
	defer done()

	if err := l.clear(); err != nil {
		log.Warn("Unable to clear LEDs: ", err)
	}
}

// Close turns the LEDs off and releases the hardware.
func (l *LedController) Close() {
	l.Stop()
	l.ws.Fini()
}

// Get the colour at position step of a red, green, blue colour wheel. The wheel repeats every 256 steps.
func getRGB(step int) uint32 {
	pos := uint32(step % 256)
	switch {
	case pos < 85:
		return (255-pos*3)<<16 | (pos*3)<<8
	case pos < 170:
		pos -= 85
		return (255-pos*3)<<8 | pos*3
	default:
		pos -= 170
		return (pos*3)<<16 | (255 - pos*3)
	}
}

// Get the same color, but with a lower or equal brightness, on a scale from 0-100, where 100 is the same as the input.
func withBrightness(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 100
	green := g * light / 100
	blue := b * light / 100

	return (red << 16) | (green << 8) | blue
}
