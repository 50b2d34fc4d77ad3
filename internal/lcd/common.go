// Package lcd drives a 16x2 HD44780 character display over a 4-bit parallel bus.
package lcd

import (
	"periph.io/x/conn/v3/gpio"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth = 16
	lineCount = 2
	character = gpio.High
	command   = gpio.Low
)

// Instructions and their flags.
const (
	cmdClear          byte = 0x01
	cmdHome           byte = 0x02
	cmdEntryMode      byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdFunctionSet    byte = 0x20
	cmdSetCGAddress   byte = 0x40

	flagIncrement byte = 0x02
	flagDisplayOn byte = 0x04
	flagTwoLines  byte = 0x08
)

// PinNames maps the display signals to GPIO names as understood by gpioreg.
type PinNames struct {
	RS   string    `yaml:"rs"`
	E    string    `yaml:"e"`
	Data [4]string `yaml:"data"`
}

// DefaultPinNames is the wiring used by the billboard enclosure.
var DefaultPinNames = PinNames{
	RS:   "GPIO4",
	E:    "GPIO17",
	Data: [4]string{"GPIO25", "GPIO22", "GPIO23", "GPIO24"},
}

// Width and Height of the display in cells.
const (
	Width  = lineWidth
	Height = lineCount
)
