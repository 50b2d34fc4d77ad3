package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tt := []struct {
		name  string
		input []byte
		code  byte
		n     int
	}{
		{"ascii", []byte("x"), 'x', 1},
		{"uppercase ascii", []byte("X"), 'X', 1},
		{"a ring", []byte("å"), SlotARing, 2},
		{"A ring", []byte("Å"), SlotARing, 2},
		{"a dots", []byte("ä"), SlotADots, 2},
		{"A dots", []byte("Ä"), SlotADots, 2},
		{"o dots", []byte("ö"), SlotODots, 2},
		{"O dots", []byte("Ö"), SlotODots, 2},
		{"unmapped continuation", []byte{0xC3, 0x99}, Unknown, 2},
		{"e acute", []byte("é"), Unknown, 2},
		{"lone lead byte", []byte{0xC3}, 0xC3, 1},
		{"lead byte before terminator", []byte{0xC3, 0x00, 0xA5}, 0xC3, 1},
		{"only first glyph", []byte("öl"), SlotODots, 2},
		{"empty", []byte{}, 0, 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			code, n := Next(tc.input)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.n, n)
		})
	}
}

func TestNextConsumesOneOrTwo(t *testing.T) {
	// every lead byte followed by every possible second byte
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			_, n := Next([]byte{byte(a), byte(b)})
			assert.True(t, n == 1 || n == 2, "0x%02x 0x%02x consumed %d", a, b, n)
		}
		_, n := Next([]byte{byte(a)})
		assert.Equal(t, 1, n)
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte{'K', SlotODots, 'p'}, Encode("Köp"))
	assert.Equal(t, []byte{'M', SlotARing, 'r', 't', 'e', 'n'}, Encode("Mårten"))
	assert.Equal(t, []byte("Harry"), Encode("Harry"))
	assert.Equal(t, []byte{SlotARing, SlotADots, SlotODots}, Encode("åäö"))
	assert.Equal(t, []byte{'a', 0xC3}, Encode("a\xc3"))
	assert.Empty(t, Encode(""))
}

func TestBuiltinPatternsFitCell(t *testing.T) {
	slots := map[byte]bool{}
	for _, g := range Builtin {
		assert.Less(t, g.Slot, byte(8))
		assert.False(t, slots[g.Slot], "slot %d defined twice", g.Slot)
		slots[g.Slot] = true
		for _, row := range g.Pattern {
			assert.Zero(t, row&^0x1f, "slot %d has a row wider than 5 pixels", g.Slot)
		}
	}
	assert.Len(t, slots, 6)
}
