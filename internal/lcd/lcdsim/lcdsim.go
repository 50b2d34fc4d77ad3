// Package lcdsim emulates an HD44780 controller wired in 4-bit mode. The simulated pins decode every
// enable pulse the same way the real chip does, so a driver can be run and inspected without hardware.
package lcdsim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/callebjorkell/billboard/internal/glyph"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

const (
	Cols = 16
	Rows = 2

	rowStride = 0x40
	rowLength = 0x28
)

// Op is a single byte latched by the controller.
type Op struct {
	Data  bool // register select was high
	Value byte
}

func (o Op) String() string {
	if o.Data {
		return fmt.Sprintf("data(0x%02x)", o.Value)
	}
	return fmt.Sprintf("cmd(0x%02x)", o.Value)
}

// Pin is a gpiotest pin that reports level changes to the controller it belongs to.
type Pin struct {
	*gpiotest.Pin
	c *Controller
}

func (p *Pin) Out(l gpio.Level) error {
	prev := p.Read()
	if err := p.Pin.Out(l); err != nil {
		return err
	}
	if p == p.c.E && prev == gpio.High && l == gpio.Low {
		p.c.latch()
	}
	return nil
}

// Controller holds the emulated chip state.
type Controller struct {
	RS   *Pin
	E    *Pin
	Data [4]*Pin // DB4 to DB7

	mu        sync.Mutex
	fourBit   bool
	half      bool
	pending   byte
	twoLines  bool
	displayOn bool
	increment bool
	cgMode    bool
	addr      byte
	ddram     [0x80]byte
	cgram     [0x40]byte
	ops       []Op
	frames    []string
}

// New returns a controller in its power-on state: 8-bit interface, display off.
func New() *Controller {
	c := &Controller{increment: true}
	c.RS = c.newPin("RS", 0)
	c.E = c.newPin("E", 1)
	for i := range c.Data {
		c.Data[i] = c.newPin(fmt.Sprintf("DB%d", i+4), i+2)
	}
	for i := range c.ddram {
		c.ddram[i] = ' '
	}
	return c
}

func (c *Controller) newPin(name string, num int) *Pin {
	return &Pin{Pin: &gpiotest.Pin{N: name, Num: num}, c: c}
}

func (c *Controller) latch() {
	var nibble byte
	for i, pin := range c.Data {
		if pin.Read() == gpio.High {
			nibble |= 1 << uint(i)
		}
	}
	data := c.RS.Read() == gpio.High

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fourBit {
		// DB0-DB3 are not wired, they read as zero.
		c.exec(data, nibble<<4)
		return
	}
	if !c.half {
		c.pending = nibble
		c.half = true
		return
	}
	c.half = false
	c.exec(data, c.pending<<4|nibble)
}

func (c *Controller) exec(data bool, b byte) {
	c.ops = append(c.ops, Op{Data: data, Value: b})
	if data {
		c.write(b)
		return
	}

	switch {
	case b&0x80 != 0:
		c.cgMode = false
		c.addr = b & 0x7f
	case b&0x40 != 0:
		c.cgMode = true
		c.addr = b & 0x3f
	case b&0x20 != 0:
		c.fourBit = b&0x10 == 0
		c.twoLines = b&0x08 != 0
	case b&0x10 != 0:
		// cursor or display shift, unused
	case b&0x08 != 0:
		c.displayOn = b&0x04 != 0
	case b&0x04 != 0:
		c.increment = b&0x02 != 0
	case b&0x02 != 0:
		c.cgMode = false
		c.addr = 0
	case b == 0x01:
		c.frames = append(c.frames, c.screen())
		log.Debugf("lcd: %s", c.frames[len(c.frames)-1])
		for i := range c.ddram {
			c.ddram[i] = ' '
		}
		c.cgMode = false
		c.addr = 0
		c.increment = true
	}
}

func (c *Controller) write(b byte) {
	if c.cgMode {
		c.cgram[c.addr&0x3f] = b
		c.addr = (c.addr + 1) & 0x3f
		return
	}
	c.ddram[c.addr&0x7f] = b
	c.addr = c.nextAddr(c.addr)
}

func (c *Controller) nextAddr(a byte) byte {
	if !c.increment {
		return (a - 1) & 0x7f
	}
	a++
	if !c.twoLines {
		return a & 0x7f
	}
	switch a {
	case rowLength:
		return rowStride
	case rowStride + rowLength:
		return 0
	}
	return a & 0x7f
}

// Row returns the character codes visible on row r.
func (c *Controller) Row(r int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.row(r)
}

func (c *Controller) row(r int) []byte {
	base := r * rowStride
	return append([]byte(nil), c.ddram[base:base+Cols]...)
}

// Address returns the current address counter and whether it points into CGRAM.
func (c *Controller) Address() (addr byte, cgram bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addr, c.cgMode
}

// Pattern returns the 8 rows programmed into custom character slot.
func (c *Controller) Pattern(slot byte) glyph.Pattern {
	c.mu.Lock()
	defer c.mu.Unlock()
	var p glyph.Pattern
	copy(p[:], c.cgram[int(slot&0x7)*8:])
	return p
}

// FourBit reports whether the interface has been switched to 4-bit transfers.
func (c *Controller) FourBit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fourBit
}

// DisplayOn reports the display-on flag of the last display control command.
func (c *Controller) DisplayOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayOn
}

// Ops returns every byte latched so far.
func (c *Controller) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Op(nil), c.ops...)
}

// Frames returns the screen as it looked right before each clear command.
func (c *Controller) Frames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.frames...)
}

// Screen renders both rows with custom glyphs replaced by the letters they draw.
func (c *Controller) Screen() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen()
}

func (c *Controller) screen() string {
	rows := make([]string, Rows)
	for r := range rows {
		rows[r] = Decode(c.row(r))
	}
	return strings.Join(rows, "|")
}

// Reset forgets recorded ops and frames, leaving the chip state untouched.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = nil
	c.frames = nil
}

var slotLetters = map[byte]rune{
	glyph.SlotARing:          'å',
	glyph.SlotADots:          'ä',
	glyph.SlotODots:          'ö',
	glyph.SlotHourglass:      '⧗',
	glyph.SlotHourglassLeft:  '◁',
	glyph.SlotHourglassRight: '▷',
}

// Decode turns character codes back into readable text.
func Decode(codes []byte) string {
	var sb strings.Builder
	for _, c := range codes {
		if r, ok := slotLetters[c]; ok {
			sb.WriteRune(r)
			continue
		}
		if c < 0x20 || c > 0x7e {
			sb.WriteRune('·')
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
