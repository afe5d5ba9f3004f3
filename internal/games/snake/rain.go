package snake

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

type drop struct {
	x     int
	y     float64
	speed float64 // rows per second
	glyph rune
}

// Rain is the falling-glyph background: one drop on every other column.
type Rain struct {
	drops  []drop
	width  int
	height int
	rng    *rand.Rand
}

// NewRain creates width/2 drops at random rows with speeds in
// [minSpeed, maxSpeed).
func NewRain(width, height int, minSpeed, maxSpeed float64, rng *rand.Rand) *Rain {
	r := &Rain{width: width, height: height, rng: rng}
	if width <= 0 || height <= 0 {
		return r
	}
	r.drops = make([]drop, width/2)
	for i := range r.drops {
		r.drops[i] = drop{
			x:     i * 2,
			y:     float64(rng.IntN(height)),
			speed: minSpeed + rng.Float64()*(maxSpeed-minSpeed),
			glyph: mapgen.RandomGlyph(rng),
		}
	}
	return r
}

// Len returns the number of drops.
func (r *Rain) Len() int { return len(r.drops) }

// Step moves every drop down by its speed and re-rolls its glyph. Drops
// falling off the bottom restart at the top.
func (r *Rain) Step(dt time.Duration) {
	for i := range r.drops {
		d := &r.drops[i]
		d.y += d.speed * dt.Seconds()
		if d.y >= float64(r.height) {
			d.y = 0
		}
		d.glyph = mapgen.RandomGlyph(r.rng)
	}
}

// Render draws the drops into dst.
func (r *Rain) Render(dst *core.Screen) {
	for _, d := range r.drops {
		dst.SetCell(d.x, int(d.y), d.glyph, core.ColorRain)
	}
}
