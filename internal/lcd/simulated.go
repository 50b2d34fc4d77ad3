package lcd

import (
	"github.com/callebjorkell/billboard/internal/clock"
	"github.com/callebjorkell/billboard/internal/lcd/lcdsim"
)

// Simulated returns an uninitialized driver wired to a fresh simulated controller.
func Simulated(s clock.Sleeper) (*Driver, *lcdsim.Controller) {
	c := lcdsim.New()
	pins := Pins{RS: c.RS, E: c.E}
	for i, p := range c.Data {
		pins.Data[i] = p
	}
	return New(pins, s), c
}
