package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StatePaused  GameStateType = "paused"
	StateDead    GameStateType = "dead"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64 // moves made
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	HasFood  bool
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.dead:
		state = StateDead
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		HasFood:  g.hasFood,
		State:    state,
	}
}
