//go:build !pi

package neopixel

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors []uint32
}

func (d mockEngine) Init() error {
	return nil
}

func (d mockEngine) Render() error {
	log.Tracef("neopixel: render %06x", d.colors[0])
	return nil
}

func (d mockEngine) Wait() error {
	return nil
}

func (d mockEngine) Fini() {
	log.Debug("neopixel: Fini")
}

func (d mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

// NewLedController returns a controller that only logs, for builds without the LED ring.
func NewLedController(opt Options) (*LedController, error) {
	log.Infof("No LED ring in this build, simulating %d LEDs", opt.Count)
	return &LedController{
		ws: mockEngine{
			colors: make([]uint32, 1),
		},
	}, nil
}
