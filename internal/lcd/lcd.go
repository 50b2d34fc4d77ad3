package lcd

import (
	"time"

	"github.com/callebjorkell/billboard/internal/clock"
	"github.com/callebjorkell/billboard/internal/glyph"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// Pins are the six signals of a 4-bit HD44780 interface. R/W is expected to be tied to ground.
type Pins struct {
	RS   gpio.PinOut    // register select
	E    gpio.PinOut    // enable, data is latched on the falling edge
	Data [4]gpio.PinOut // DB4 to DB7
}

// Driver writes to an HD44780 controller. Writes cannot fail or be read back, so correctness relies
// entirely on holding every delay the controller requires.
type Driver struct {
	pins  Pins
	sleep clock.Sleeper
	col   int
	row   int
}

// New returns a driver for an uninitialized display. Call Initialize before writing.
func New(pins Pins, s clock.Sleeper) *Driver {
	return &Driver{
		pins:  pins,
		sleep: s,
	}
}

// Initialize runs the power-on sequence, configures a 2-line 4-bit interface and programs the built-in
// custom glyphs.
func (d *Driver) Initialize() {
	log.Infoln("Initializing LCD")
	d.pins.RS.Out(command)
	d.pins.E.Out(gpio.Low)
	for _, pin := range d.pins.Data {
		pin.Out(gpio.Low)
	}

	// Force 8-bit mode whatever state the controller woke up in, then drop to 4 bits.
	d.sleep.Sleep(powerOnDelay)
	d.outNibble(0x03)
	d.sleep.Sleep(wakeFirstDelay)
	d.outNibble(0x03)
	d.sleep.Sleep(wakeSecondDelay)
	d.outNibble(0x03)
	d.outNibble(0x02)

	d.SendCommand(cmdFunctionSet | flagTwoLines)
	d.SendCommand(cmdDisplayControl | flagDisplayOn)
	d.Clear()
	d.SendCommand(cmdEntryMode | flagIncrement)
	d.sleep.Sleep(entryModeDelay)

	for _, g := range glyph.Builtin {
		d.DefineGlyph(g.Slot, g.Pattern)
	}
}

// SendCommand transmits an instruction byte.
func (d *Driver) SendCommand(code byte) {
	d.outNibble(code >> 4)
	d.outNibble(code)
	d.sleep.Sleep(settleDelay)
}

// SendData writes one character code at the cursor. The controller advances its address counter.
func (d *Driver) SendData(code byte) {
	d.write(code)
	d.col++
}

func (d *Driver) write(code byte) {
	d.pins.RS.Out(character)
	d.SendCommand(code)
	d.pins.RS.Out(command)
}

// WriteText writes already encoded character codes from the cursor onwards. After a full row the cursor
// moves to the start of the second row. Codes beyond the last cell of the display are dropped.
func (d *Driver) WriteText(codes []byte) {
	for i, c := range codes {
		if i == lineWidth*lineCount {
			log.Debugf("Dropping %d codes that do not fit the display", len(codes)-i)
			return
		}
		if i == lineWidth {
			d.GoTo(0, 1)
		}
		d.SendData(c)
	}
}

// GoTo moves the cursor to column col of row row. Positions outside the display are not checked.
func (d *Driver) GoTo(col, row int) {
	base := Line1
	if row > 0 {
		base = Line2
	}
	d.SendCommand(byte(base) + byte(col))
	d.col, d.row = col, row
}

// Position returns the cursor position as last set or advanced by the driver.
func (d *Driver) Position() (col, row int) {
	return d.col, d.row
}

// Clear blanks the display and homes the cursor.
func (d *Driver) Clear() {
	d.SendCommand(cmdClear)
	d.sleep.Sleep(longDelay)
	d.col, d.row = 0, 0
}

// Home returns the cursor to the top left cell.
func (d *Driver) Home() {
	d.SendCommand(cmdHome)
	d.sleep.Sleep(longDelay)
	d.col, d.row = 0, 0
}

// DefineGlyph programs a custom character. Only the low 3 bits of slot are used.
func (d *Driver) DefineGlyph(slot byte, p glyph.Pattern) {
	slot &= 0x7
	d.SendCommand(cmdSetCGAddress | slot<<3)
	for _, row := range p {
		d.write(row & 0x1f)
	}
	// back to DDRAM addressing
	d.GoTo(d.col, d.row)
}

func (d *Driver) outNibble(nibble byte) {
	for i, pin := range d.pins.Data {
		pin.Out(gpio.Low)
		if nibble&(1<<uint(i)) != 0 {
			pin.Out(gpio.High)
		}
	}
	d.pins.E.Out(gpio.High)
	d.sleep.Sleep(enablePulse)
	d.pins.E.Out(gpio.Low)
}

// Timing is a floor imposed by the controller, never shorten it.
const (
	enablePulse     = time.Microsecond
	settleDelay     = 50 * time.Microsecond
	longDelay       = 2 * time.Millisecond
	powerOnDelay    = 50 * time.Millisecond
	wakeFirstDelay  = 5 * time.Millisecond
	wakeSecondDelay = 100 * time.Microsecond
	entryModeDelay  = 25 * time.Microsecond
)
