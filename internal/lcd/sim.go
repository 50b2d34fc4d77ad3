//go:build !pi

package lcd

import (
	"github.com/callebjorkell/billboard/internal/clock"
	log "github.com/sirupsen/logrus"
)

// Open returns a driver attached to a simulated controller. Pin names are only logged. Frames are
// written to the debug log every time the display is cleared.
func Open(names PinNames, s clock.Sleeper) (*Driver, error) {
	log.Infof("No LCD hardware in this build, simulating display on %v/%v/%v", names.RS, names.E, names.Data)
	d, _ := Simulated(s)
	d.Initialize()
	return d, nil
}
