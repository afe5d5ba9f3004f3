package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

const testInterval = 120 * time.Millisecond

func openMap(t *testing.T) *mapgen.WallSet {
	t.Helper()
	walls, err := mapgen.Generate(1, 0, 32, 24)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return walls
}

// moveOnce advances g by exactly one move interval.
func moveOnce(g *Game, actions ...core.Action) []Event {
	return g.Step(g.Interval(), core.InputOf(actions...))
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	walls, err := mapgen.Generate(99, 0.2, 32, 24)
	if err != nil {
		t.Fatal(err)
	}
	g1 := NewGame(walls, testInterval, 12345)
	g2 := NewGame(walls, testInterval, 12345)

	dt := time.Second / 60
	input := core.NewInputFrame()
	for i := range 600 {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 80:
			input.Set(core.ActionLeft)
		case 160:
			input.Set(core.ActionUp)
		}

		g1.Step(dt, input)
		g2.Step(dt, input)

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestInitialSnake(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	snake := g.Snake()
	if len(snake) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(snake))
	}
	want := []mapgen.Cell{{X: 16, Y: 12}, {X: 15, Y: 12}, {X: 14, Y: 12}}
	for i, seg := range snake {
		if seg.Cell != want[i] {
			t.Errorf("segment %d at %v, expected %v", i, seg.Cell, want[i])
		}
		if seg.Glyph == 0 {
			t.Errorf("segment %d has no glyph", i)
		}
	}
	if g.Direction() != DirRight {
		t.Errorf("initial direction %v, expected right", g.Direction())
	}
}

func TestMovesOnlyAfterInterval(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	start := g.Snapshot()

	g.Step(testInterval/2, core.NewInputFrame())
	if g.Snapshot().HeadX != start.HeadX {
		t.Fatal("snake moved before the interval elapsed")
	}
	g.Step(testInterval/2, core.NewInputFrame())
	if g.Snapshot().HeadX != start.HeadX+1 {
		t.Errorf("head x = %d, expected %d", g.Snapshot().HeadX, start.HeadX+1)
	}
}

func TestLongTickMakesSeveralMoves(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	start := g.Snapshot()

	g.Step(3*testInterval+testInterval/2, core.NewInputFrame())
	if g.Snapshot().HeadX != start.HeadX+3 {
		t.Fatalf("head x = %d, expected %d", g.Snapshot().HeadX, start.HeadX+3)
	}
	// The leftover half interval carries over.
	g.Step(testInterval/2, core.NewInputFrame())
	if g.Snapshot().HeadX != start.HeadX+4 {
		t.Errorf("head x = %d, expected %d", g.Snapshot().HeadX, start.HeadX+4)
	}
}

func TestLongTickStopsAtDeath(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)

	events := g.Step(40*testInterval, core.NewInputFrame())
	if !g.Dead() {
		t.Fatal("expected the snake to hit the right border")
	}
	died := 0
	for _, e := range events {
		if e.Kind == EventDied {
			died++
		}
	}
	if died != 1 {
		t.Errorf("got %d EventDied, expected 1", died)
	}
	if x := g.Snapshot().HeadX; x != 30 {
		t.Errorf("head x = %d, expected 30 next to the border", x)
	}
}

func TestNoInstantReversal(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	start := g.Snapshot()

	moveOnce(g, core.ActionLeft)
	snap := g.Snapshot()
	if snap.Dir != DirRight {
		t.Errorf("direction = %v, reversal should be ignored", snap.Dir)
	}
	if snap.HeadX != start.HeadX+1 || snap.State != StatePlaying {
		t.Errorf("unexpected snapshot after reversal attempt: %+v", snap)
	}

	// Up then Left within one interval ends up turning up, never reversing.
	g.Step(testInterval/4, core.InputOf(core.ActionUp))
	g.Step(testInterval/4, core.InputOf(core.ActionLeft))
	g.Step(testInterval/2, core.NewInputFrame())
	if g.Direction() == DirLeft {
		t.Error("buffered input allowed a reversal")
	}
}

func TestFoodNeverOnWallsOrSnake(t *testing.T) {
	for seed := range uint64(200) {
		walls, err := mapgen.Generate(seed, 0.35, 32, 24)
		if err != nil {
			t.Fatal(err)
		}
		g := NewGame(walls, testInterval, seed)
		food, glyph, ok := g.Food()
		if !ok {
			t.Fatalf("seed %d: no food spawned", seed)
		}
		if walls.Contains(food) {
			t.Errorf("seed %d: food on wall %v", seed, food)
		}
		if g.isSnakeAt(food) {
			t.Errorf("seed %d: food on snake %v", seed, food)
		}
		if food.X < 1 || food.Y < 1 || food.X > 30 || food.Y > 22 {
			t.Errorf("seed %d: food outside interior %v", seed, food)
		}
		if glyph == 0 {
			t.Errorf("seed %d: food has no glyph", seed)
		}
	}
}

func TestWallCollisionEndsRun(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	// Keep food away from the path.
	g.food = mapgen.Cell{X: 1, Y: 1}

	// Head starts at x=16; x=31 is the border.
	for i := range 14 {
		if events := moveOnce(g); hasEvent(events, EventDied) {
			t.Fatalf("died early on move %d at %+v", i, g.Snapshot())
		}
	}
	if g.Snapshot().HeadX != 30 {
		t.Fatalf("head x = %d, expected 30", g.Snapshot().HeadX)
	}

	events := moveOnce(g)
	if !hasEvent(events, EventDied) {
		t.Fatalf("expected EventDied, got %v", events)
	}
	if !g.Dead() || !g.State().GameOver {
		t.Error("game should be over")
	}
	if g.Snapshot().State != StateDead {
		t.Errorf("state = %v, expected dead", g.Snapshot().State)
	}

	before := g.Snapshot()
	if events := moveOnce(g, core.ActionUp); events != nil {
		t.Errorf("dead game emitted %v", events)
	}
	if g.Snapshot() != before {
		t.Error("dead game kept moving")
	}
}

func TestInteriorWallCollision(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	head := g.Snake()[0].Cell
	g.walls = wallSetWith(t, g.walls, mapgen.Cell{X: head.X + 1, Y: head.Y})

	if events := moveOnce(g); !hasEvent(events, EventDied) {
		t.Errorf("expected EventDied moving into a wall, got %v", events)
	}
}

// wallSetWith returns a copy of the open map with one extra wall, found
// by searching seeds of a dense map for a generated wall at c.
func wallSetWith(t *testing.T, open *mapgen.WallSet, c mapgen.Cell) *mapgen.WallSet {
	t.Helper()
	for seed := range uint64(10000) {
		walls, err := mapgen.GenerateParams(mapgen.Params{
			Seed: seed, Density: mapgen.MaxDensity,
			Width: open.Width(), Height: open.Height(), SafeRadius: 0,
		})
		if err != nil {
			t.Fatal(err)
		}
		if walls.Contains(c) {
			return walls
		}
	}
	t.Fatalf("no seed puts a wall at %v", c)
	return nil
}

func TestEatingEmitsEventAte(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	head := g.Snake()[0].Cell
	g.food = mapgen.Cell{X: head.X + 1, Y: head.Y}
	g.hasFood = true

	events := moveOnce(g)
	if len(events) != 1 || events[0].Kind != EventAte || events[0].Score != 1 {
		t.Fatalf("expected one EventAte with score 1, got %v", events)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if len(g.Snake()) != 4 {
		t.Errorf("length = %d, expected 4 after eating", len(g.Snake()))
	}
	food, _, ok := g.Food()
	if !ok || g.isSnakeAt(food) || g.walls.Contains(food) {
		t.Errorf("respawned food %v is not on a free cell", food)
	}

	// Length stays at 4 on the next plain move.
	g.food = mapgen.Cell{X: 1, Y: 1}
	moveOnce(g)
	if len(g.Snake()) != 4 {
		t.Errorf("length = %d, expected 4", len(g.Snake()))
	}
}

func TestSelfCollision(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	g.food = mapgen.Cell{X: 1, Y: 1}
	g.snake = []Segment{
		{Cell: mapgen.Cell{X: 5, Y: 5}},
		{Cell: mapgen.Cell{X: 5, Y: 6}},
		{Cell: mapgen.Cell{X: 6, Y: 6}},
		{Cell: mapgen.Cell{X: 6, Y: 5}},
		{Cell: mapgen.Cell{X: 6, Y: 4}},
	}
	g.direction, g.nextDir = DirUp, DirUp

	if events := moveOnce(g, core.ActionRight); !hasEvent(events, EventDied) {
		t.Errorf("expected EventDied on self collision, got %v", events)
	}
}

func TestMovingIntoTailIsAllowed(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	g.food = mapgen.Cell{X: 1, Y: 1}
	g.snake = []Segment{
		{Cell: mapgen.Cell{X: 5, Y: 5}},
		{Cell: mapgen.Cell{X: 5, Y: 6}},
		{Cell: mapgen.Cell{X: 6, Y: 6}},
		{Cell: mapgen.Cell{X: 6, Y: 5}},
	}
	g.direction, g.nextDir = DirUp, DirUp

	if events := moveOnce(g, core.ActionRight); hasEvent(events, EventDied) {
		t.Error("moving into the vacating tail should not kill")
	}
	if g.Snake()[0].Cell != (mapgen.Cell{X: 6, Y: 5}) {
		t.Errorf("head at %v, expected (6,5)", g.Snake()[0].Cell)
	}
}

func TestPauseToggles(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 1)
	start := g.Snapshot()

	moveOnce(g, core.ActionPause)
	if !g.Paused() || g.Snapshot().State != StatePaused {
		t.Fatal("expected paused")
	}
	if g.Snapshot().HeadX != start.HeadX {
		t.Error("paused game moved")
	}

	moveOnce(g, core.ActionPause)
	if g.Paused() {
		t.Fatal("expected unpaused")
	}
	if g.Snapshot().HeadX != start.HeadX+1 {
		t.Error("unpaused game did not move")
	}
}

func TestFullBoardHasNoFood(t *testing.T) {
	walls, err := mapgen.Generate(1, 0, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(walls, testInterval, 1)
	g.snake = nil
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			g.snake = append(g.snake, Segment{Cell: mapgen.Cell{X: x, Y: y}})
		}
	}
	g.spawnFood()
	if _, _, ok := g.Food(); ok {
		t.Error("expected no food on a full board")
	}
}

func TestResetRestoresStart(t *testing.T) {
	g := NewGame(openMap(t), testInterval, 5)
	start := g.Snapshot()
	for range 5 {
		moveOnce(g, core.ActionDown)
	}
	g.Reset()
	if g.Snapshot() != start {
		t.Errorf("Reset snapshot %+v, expected %+v", g.Snapshot(), start)
	}
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		d         Direction
		clockwise Direction
		opposite  Direction
	}{
		{DirUp, DirRight, DirDown},
		{DirRight, DirDown, DirLeft},
		{DirDown, DirLeft, DirUp},
		{DirLeft, DirUp, DirRight},
	}
	for _, tc := range tests {
		if got := tc.d.Clockwise(); got != tc.clockwise {
			t.Errorf("%v.Clockwise() = %v, expected %v", tc.d, got, tc.clockwise)
		}
		if !tc.d.Opposite(tc.opposite) {
			t.Errorf("%v should be opposite %v", tc.d, tc.opposite)
		}
		if tc.d.Opposite(tc.clockwise) {
			t.Errorf("%v should not be opposite %v", tc.d, tc.clockwise)
		}
	}
}
