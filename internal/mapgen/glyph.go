package mapgen

import "math/rand/v2"

// Glyphs is the Matrix-style alphabet used for walls, the snake and rain.
const Glyphs = `01<>[]{}()/\|-=+*;:.,^~ABCDEFGHIJKLMNOPQRSTUVWXYZ`

// GlyphFor returns the fixed glyph for a cell, so a wall keeps its
// character from frame to frame.
func GlyphFor(c Cell) rune {
	hx := int64(c.X) * 73_856_093
	hy := int64(c.Y) * 19_349_663
	h := hx ^ hy
	var u uint64
	if h < 0 {
		u = uint64(-h) // -MinInt64 wraps to MinInt64, which converts to 1<<63
	} else {
		u = uint64(h)
	}
	return rune(Glyphs[u%uint64(len(Glyphs))])
}

// RandomGlyph returns a uniformly chosen glyph drawn from r.
func RandomGlyph(r *rand.Rand) rune {
	return rune(Glyphs[r.IntN(len(Glyphs))])
}
