package snake

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

// Direction represents the snake's movement direction.
// The values are ordered clockwise.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Clockwise returns the direction a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Opposite reports whether d and other point in opposite directions.
func (d Direction) Opposite(other Direction) bool {
	return (d+2)%4 == other
}

// Step returns the neighbor of c in direction d.
func (d Direction) Step(c mapgen.Cell) mapgen.Cell {
	switch d {
	case DirUp:
		return mapgen.Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return mapgen.Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return mapgen.Cell{X: c.X - 1, Y: c.Y}
	default:
		return mapgen.Cell{X: c.X + 1, Y: c.Y}
	}
}

// Segment is one snake cell with the glyph it was drawn with.
type Segment struct {
	mapgen.Cell
	Glyph rune
}

// Game is the playing field of one run: the map, the snake and the food.
type Game struct {
	walls    *mapgen.WallSet
	rng      *rand.Rand
	seed     uint64
	interval time.Duration
	elapsed  time.Duration // time accumulated towards the next move

	tick  uint64 // moves made
	score int

	// Snake state
	snake     []Segment // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move

	food      mapgen.Cell
	foodGlyph rune
	hasFood   bool

	dead   bool
	paused bool
}

// NewGame starts a run on walls. The snake moves one cell every interval;
// seed drives food placement and glyphs.
func NewGame(walls *mapgen.WallSet, interval time.Duration, seed uint64) *Game {
	g := &Game{
		walls:    walls,
		seed:     seed,
		interval: max(interval, time.Millisecond),
	}
	g.Reset()
	return g
}

// Reset restarts the run on the same map, speed and seed.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewPCG(g.seed, g.seed^0xD1B54A32D192ED03))
	g.elapsed = 0
	g.tick = 0
	g.score = 0
	g.dead = false
	g.paused = false
	g.initSnake()
	g.spawnFood()
}

// initSnake places a three-segment snake at the map center heading right.
func (g *Game) initSnake() {
	head := g.walls.Spawn()
	g.snake = []Segment{
		{Cell: head, Glyph: mapgen.RandomGlyph(g.rng)},
		{Cell: mapgen.Cell{X: head.X - 1, Y: head.Y}, Glyph: mapgen.RandomGlyph(g.rng)},
		{Cell: mapgen.Cell{X: head.X - 2, Y: head.Y}, Glyph: mapgen.RandomGlyph(g.rng)},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food at a uniformly chosen empty interior cell.
func (g *Game) spawnFood() {
	var emptyCells []mapgen.Cell
	for y := 1; y < g.walls.Height()-1; y++ {
		for x := 1; x < g.walls.Width()-1; x++ {
			c := mapgen.Cell{X: x, Y: y}
			if !g.walls.Contains(c) && !g.isSnakeAt(c) {
				emptyCells = append(emptyCells, c)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Board is full
		g.hasFood = false
		return
	}

	g.food = emptyCells[g.rng.IntN(len(emptyCells))]
	g.foodGlyph = mapgen.RandomGlyph(g.rng)
	g.hasFood = true
}

func (g *Game) isSnakeAt(c mapgen.Cell) bool {
	for _, seg := range g.snake {
		if seg.Cell == c {
			return true
		}
	}
	return false
}

// Step advances the run by dt, making one move per elapsed interval, so a
// tick longer than the interval makes several moves. It returns EventAte
// and EventDied as they happen; nothing moves after a death.
func (g *Game) Step(dt time.Duration, input core.InputFrame) []Event {
	if g.dead {
		return nil
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.processInput(input)

	g.elapsed += dt
	var events []Event
	for g.elapsed >= g.interval && !g.dead {
		g.elapsed -= g.interval
		events = append(events, g.move()...)
	}
	return events
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !newDir.Opposite(g.direction) {
		g.nextDir = newDir
	}
}

// move moves the snake one cell in the buffered direction.
func (g *Game) move() []Event {
	g.tick++
	g.direction = g.nextDir
	newHead := g.direction.Step(g.snake[0].Cell)

	if !g.walls.InBounds(newHead) || g.walls.Contains(newHead) {
		return g.die()
	}

	// Check self collision (excluding tail if not growing, since it will move)
	checkLen := len(g.snake)
	if !g.growing {
		checkLen--
	}
	for i := range checkLen {
		if g.snake[i].Cell == newHead {
			return g.die()
		}
	}

	g.snake = append([]Segment{{Cell: newHead, Glyph: mapgen.RandomGlyph(g.rng)}}, g.snake...)

	var events []Event
	if g.hasFood && newHead == g.food {
		g.score++
		g.growing = true // Don't remove tail this move
		g.spawnFood()
		events = append(events, Event{Kind: EventAte, Score: g.score})
	}

	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
	return events
}

func (g *Game) die() []Event {
	g.dead = true
	return []Event{{Kind: EventDied, Score: g.score}}
}

// Walls returns the map of this run.
func (g *Game) Walls() *mapgen.WallSet { return g.walls }

// Interval returns the move interval.
func (g *Game) Interval() time.Duration { return g.interval }

// Score returns the food eaten so far.
func (g *Game) Score() int { return g.score }

// Dead reports whether the run has ended.
func (g *Game) Dead() bool { return g.dead }

// Paused reports whether the run is paused.
func (g *Game) Paused() bool { return g.paused }

// Direction returns the direction of the last move.
func (g *Game) Direction() Direction { return g.direction }

// Snake returns the snake segments, head first.
func (g *Game) Snake() []Segment { return g.snake }

// Food returns the food cell and glyph. ok is false when the board has no
// free cell left.
func (g *Game) Food() (c mapgen.Cell, glyph rune, ok bool) {
	return g.food, g.foodGlyph, g.hasFood
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.dead,
		Paused:   g.paused,
	}
}
