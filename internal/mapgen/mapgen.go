// Package mapgen generates the wall layout of a snake map.
//
// Generation is a pure function of its inputs: every call owns a freshly
// seeded PCG generator, so the same seed, density and dimensions always
// give the same WallSet on every platform, and concurrent calls never
// share state.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Generation limits and defaults.
const (
	MaxDensity        = 0.35
	DefaultSafeRadius = 2 // 5x5 clear square around the spawn point

	// pcgStream is mixed into the seed to derive PCG's second state word.
	pcgStream uint64 = 0x9E3779B97F4A7C15
)

var (
	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("mapgen: invalid dimensions")
	// ErrInvalidParameter is returned for unusable generation parameters.
	ErrInvalidParameter = errors.New("mapgen: invalid parameter")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Params configures a generation run.
type Params struct {
	Seed       uint64
	Density    float64 // Clamped to [0, MaxDensity]
	Width      int
	Height     int
	SafeRadius int // Half-size of the clear square around the spawn point
}

// Generate builds the wall set for a width x height grid using the
// default safe zone.
func Generate(seed uint64, wallDensity float64, width, height int) (*WallSet, error) {
	return GenerateParams(Params{
		Seed:       seed,
		Density:    wallDensity,
		Width:      width,
		Height:     height,
		SafeRadius: DefaultSafeRadius,
	})
}

// GenerateParams builds the wall set described by p.
//
// The border is always sealed. Interior cells outside the safe zone are
// visited row by row, top to bottom and left to right; each consumes one
// draw and becomes a wall when the draw falls below the density. Safe
// zone cells consume no draw.
func GenerateParams(p Params) (*WallSet, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.SafeRadius < 0 {
		return nil, fmt.Errorf("%w: safe radius %d", ErrInvalidParameter, p.SafeRadius)
	}

	density := core.ClampF(p.Density, 0, MaxDensity)
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^pcgStream))

	ws := &WallSet{
		seed:    p.Seed,
		density: density,
		width:   p.Width,
		height:  p.Height,
		walls:   make(map[Cell]struct{}, 2*(p.Width+p.Height)),
	}
	interior := core.NewRect(0, 0, p.Width, p.Height).Inset(1)
	ws.safe = core.RectAround(p.Width/2, p.Height/2, p.SafeRadius).Intersect(interior)

	for x := 0; x < p.Width; x++ {
		ws.add(Cell{X: x, Y: 0})
		ws.add(Cell{X: x, Y: p.Height - 1})
	}
	for y := 0; y < p.Height; y++ {
		ws.add(Cell{X: 0, Y: y})
		ws.add(Cell{X: p.Width - 1, Y: y})
	}

	for y := interior.Y; y < interior.Bottom(); y++ {
		for x := interior.X; x < interior.Right(); x++ {
			if ws.safe.Contains(x, y) {
				continue
			}
			if rng.Float64() < density {
				ws.add(Cell{X: x, Y: y})
			}
		}
	}

	return ws, nil
}

// WallSet is the set of impassable cells of one generated map.
// It is immutable once returned by Generate.
type WallSet struct {
	seed    uint64
	density float64
	width   int
	height  int
	safe    core.Rect
	walls   map[Cell]struct{}
}

func (w *WallSet) add(c Cell) {
	w.walls[c] = struct{}{}
}

// Seed returns the seed the set was generated from.
func (w *WallSet) Seed() uint64 { return w.seed }

// Density returns the clamped wall density used for generation.
func (w *WallSet) Density() float64 { return w.density }

// Width returns the grid width.
func (w *WallSet) Width() int { return w.width }

// Height returns the grid height.
func (w *WallSet) Height() int { return w.height }

// SafeZone returns the wall-free rectangle around the spawn point.
func (w *WallSet) SafeZone() core.Rect { return w.safe }

// Spawn returns the spawn point at the center of the grid.
func (w *WallSet) Spawn() Cell {
	return Cell{X: w.width / 2, Y: w.height / 2}
}

// Contains reports whether c is a wall.
func (w *WallSet) Contains(c Cell) bool {
	_, ok := w.walls[c]
	return ok
}

// IsWall reports whether (x, y) is a wall.
func (w *WallSet) IsWall(x, y int) bool {
	return w.Contains(Cell{X: x, Y: y})
}

// InBounds reports whether c lies on the grid.
func (w *WallSet) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// InSafeZone reports whether c lies inside the safe zone.
func (w *WallSet) InSafeZone(c Cell) bool {
	return w.safe.Contains(c.X, c.Y)
}

// Len returns the number of walls.
func (w *WallSet) Len() int {
	return len(w.walls)
}

// Cells returns all walls in row-major order.
func (w *WallSet) Cells() []Cell {
	cells := make([]Cell, 0, len(w.walls))
	for c := range w.walls {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return cells
}

// Equal reports whether two sets cover the same grid with the same walls.
func (w *WallSet) Equal(other *WallSet) bool {
	if w == nil || other == nil {
		return w == other
	}
	if w.width != other.width || w.height != other.height || len(w.walls) != len(other.walls) {
		return false
	}
	for c := range w.walls {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// InteriorStats counts the cells eligible for random walls.
type InteriorStats struct {
	Eligible int // Interior cells outside the safe zone
	Walls    int // Eligible cells that are walls
}

// Fraction returns the wall ratio among eligible cells.
func (s InteriorStats) Fraction() float64 {
	if s.Eligible == 0 {
		return 0
	}
	return float64(s.Walls) / float64(s.Eligible)
}

// Interior returns statistics over the randomly rolled cells.
func (w *WallSet) Interior() InteriorStats {
	var s InteriorStats
	for y := 1; y < w.height-1; y++ {
		for x := 1; x < w.width-1; x++ {
			if w.safe.Contains(x, y) {
				continue
			}
			s.Eligible++
			if w.IsWall(x, y) {
				s.Walls++
			}
		}
	}
	return s
}
