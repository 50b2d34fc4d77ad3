// Package glyph turns UTF-8 text into the single byte character codes understood by an HD44780 style
// controller. The Swedish letters å, ä and ö are not part of the controller's character ROM, so they are
// mapped onto custom glyph slots that are programmed at start-up.
package glyph

// Custom character RAM slots.
const (
	SlotARing byte = iota // å/Å
	SlotADots             // ä/Ä
	SlotODots             // ö/Ö
	SlotHourglass
	SlotHourglassLeft
	SlotHourglassRight
)

const (
	// Unknown is shown for two byte sequences that have no glyph.
	Unknown byte = '?'

	latinLead byte = 0xC3
)

var swedish = map[byte]byte{
	0xA5: SlotARing, // å
	0xA4: SlotADots, // ä
	0xB6: SlotODots, // ö
	0x85: SlotARing, // Å
	0x84: SlotADots, // Ä
	0x96: SlotODots, // Ö
}

// Next decodes the glyph at the start of p. It returns the character code and the number of bytes
// consumed, which is 1 or 2. A 0xC3 lead byte is only combined with its continuation when one follows
// before the end of p or a NUL terminator. Empty input yields n == 0.
func Next(p []byte) (code byte, n int) {
	if len(p) == 0 {
		return 0, 0
	}
	if p[0] == latinLead && len(p) > 1 && p[1] != 0 {
		if c, ok := swedish[p[1]]; ok {
			return c, 2
		}
		return Unknown, 2
	}
	return p[0], 1
}

// Encode converts the whole of s into character codes, one per decoded glyph.
func Encode(s string) []byte {
	p := []byte(s)
	codes := make([]byte, 0, len(p))
	for len(p) > 0 {
		c, n := Next(p)
		codes = append(codes, c)
		p = p[n:]
	}
	return codes
}
