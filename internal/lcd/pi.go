//go:build pi

package lcd

import (
	"fmt"

	"github.com/callebjorkell/billboard/internal/clock"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Open looks up the display pins on the host GPIO controller and returns an initialized driver.
func Open(names PinNames, s clock.Sleeper) (*Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	lookup := func(name string) (gpio.PinOut, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("no GPIO pin named %q", name)
		}
		return p, nil
	}

	var pins Pins
	var err error
	if pins.RS, err = lookup(names.RS); err != nil {
		return nil, err
	}
	if pins.E, err = lookup(names.E); err != nil {
		return nil, err
	}
	for i, name := range names.Data {
		if pins.Data[i], err = lookup(name); err != nil {
			return nil, err
		}
	}
	log.Debugf("LCD pins: RS=%v E=%v DB4-7=%v", pins.RS, pins.E, pins.Data)

	d := New(pins, s)
	d.Initialize()
	return d, nil
}
