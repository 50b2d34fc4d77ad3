package glyph

// Pattern is a custom character cell, one 5-bit row per entry from top to bottom.
type Pattern [8]byte

// Glyph binds a pattern to the custom character RAM slot it is programmed into.
type Glyph struct {
	Slot    byte
	Pattern Pattern
}

// Builtin is the set of glyphs programmed when the display is initialized.
var Builtin = []Glyph{
	{SlotARing, Pattern{0b00100, 0b00000, 0b01110, 0b00001, 0b01111, 0b10001, 0b01111, 0b00000}},
	{SlotADots, Pattern{0b01010, 0b00000, 0b01110, 0b00001, 0b01111, 0b10001, 0b01111, 0b00000}},
	{SlotODots, Pattern{0b01010, 0b00000, 0b01110, 0b10001, 0b10001, 0b10001, 0b01110, 0b00000}},
	{SlotHourglass, Pattern{0x1f, 0x11, 0x0a, 0x04, 0x04, 0x0a, 0x11, 0x1f}},
	{SlotHourglassLeft, Pattern{0x00, 0x0c, 0x0a, 0x09, 0x0a, 0x0c, 0x00, 0x00}},
	{SlotHourglassRight, Pattern{0x00, 0x06, 0x0a, 0x12, 0x0a, 0x06, 0x00, 0x00}},
}
