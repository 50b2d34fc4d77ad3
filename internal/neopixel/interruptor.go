package neopixel

import (
	"errors"
	log "github.com/sirupsen/logrus"
	"sync"
)

// Interruptor shares the LEDs between effects. An effect that wants the LEDs calls Interrupt, which marks
// the current owner as interrupted and then waits for it to let go. A running effect SHOULD check
// IsInterrupted regularly and return as soon as it is set.
type Interruptor struct {
	waiting       int
	runLock       sync.Mutex
	interruptLock sync.Mutex
}

type Unlocker func()

// Interrupt the current owner and wait for a turn on the LEDs. The returned Unlocker hands them back.
func (i *Interruptor) Interrupt() Unlocker {
	i.interrupt()
	i.runLock.Lock()

	i.running()
	return func() {
		i.done()
	}
}

func (i *Interruptor) running() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting--
}

func (i *Interruptor) interrupt() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting++
	log.Debug("Waiting for LEDs: ", i.waiting)
}

func (i *Interruptor) IsInterrupted() bool {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	return i.waiting != 0
}

func (i *Interruptor) done() {
	defer i.runLock.Unlock()

	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()
	if i.waiting < 0 {
		log.Warn(errors.New("number waiting for LEDs less than zero"))
	}
}
