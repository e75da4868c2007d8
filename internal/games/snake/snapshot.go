package snake

import "github.com/vovakirdan/gesture-snake/internal/core"

// GameStateType represents the current mode of the state machine.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of everything the renderer needs, also used
// for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Body      []core.Point // Head first
	Dir       core.Direction
	NextDir   core.Direction
	Fruit     core.Point
	Particles []Particle
	TickRate  int
	State     GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.gameOver {
		state = StateGameOver
	}

	particles := make([]Particle, len(g.particles))
	copy(particles, g.particles)

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Body:      g.body.points(),
		Dir:       g.direction,
		NextDir:   g.nextDir,
		Fruit:     g.fruit,
		Particles: particles,
		TickRate:  g.tickRate,
		State:     state,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() core.Point {
	return s.Body[0]
}

// GameOver reports whether the snapshot was taken in the game-over state.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}
