// Package snake implements the classic grid snake as a deterministic tick
// state machine driven by gesture input.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Game implements the snake game. It is owned by the game loop and must not
// be shared with the capture loop.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	tick     uint64
	score    int
	tickRate int

	body      body
	direction core.Direction
	nextDir   core.Direction // Applied on the next tick
	fruit     core.Point
	particles []Particle

	gameOver bool
}

// New creates a game for the given configuration. Call Reset before the
// first Tick.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gesture Snake"
}

// Reset seeds the RNG and starts a fresh game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = g.cfg.Speed.Base
	g.restart()
}

// restart returns to the initial state without reseeding.
func (g *Game) restart() {
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.particles = g.particles[:0]

	g.body.reset(core.Point{X: g.cfg.Grid.Width / 2, Y: g.cfg.Grid.Height / 2})
	g.direction = core.DirRight
	g.nextDir = core.DirRight

	g.spawnFruit()
}

// spawnFruit places the fruit on a uniformly random free cell by rejection
// sampling. A full grid parks the fruit off the board.
func (g *Game) spawnFruit() {
	if g.body.len() >= g.cfg.Grid.Width*g.cfg.Grid.Height {
		g.fruit = core.Point{X: -1, Y: -1}
		return
	}
	for {
		p := core.Point{
			X: g.rng.Intn(g.cfg.Grid.Width),
			Y: g.rng.Intn(g.cfg.Grid.Height),
		}
		if !g.body.contains(p) {
			g.fruit = p
			return
		}
	}
}

// Tick advances the game by one tick.
func (g *Game) Tick(in core.InputFrame) core.StepResult {
	g.tick++

	g.tickRate = g.cfg.Speed.Base
	if in.Boost {
		g.tickRate = g.cfg.Speed.Boost
	}

	if in.Quit {
		return g.result(false)
	}

	// Restart on UP gesture when game over
	if g.gameOver && in.Direction == core.DirUp {
		g.restart()
		return g.result(true)
	}

	// Prevent instant reversal
	if in.HasDirection() && !in.Direction.IsOpposite(g.direction) {
		g.nextDir = in.Direction
	}
	g.direction = g.nextDir

	if !g.gameOver && !g.moveSnake() {
		return g.result(true)
	}

	g.particles = updateParticles(g.particles)
	return g.result(true)
}

// moveSnake steps the head one cell. It returns false if the snake crashed,
// leaving the body as it was.
func (g *Game) moveSnake() bool {
	dx, dy := g.direction.Delta()
	newHead := g.body.head().Add(dx, dy)

	if !g.Bounds().ContainsPoint(newHead) {
		g.gameOver = true
		return false
	}
	if g.body.contains(newHead) {
		g.gameOver = true
		return false
	}

	g.body.pushFront(newHead)

	if newHead == g.fruit {
		g.score += g.cfg.Fruit.Points
		g.particles = spawnBurst(g.particles, g.rng, g.cellCenter(g.fruit),
			g.cfg.Particles.Burst, g.cfg.Particles.Life, g.cfg.Particles.MaxSpeed)
		g.spawnFruit()
	} else {
		g.body.popBack()
	}
	return true
}

// cellCenter returns the notional pixel center of a grid cell.
func (g *Game) cellCenter(p core.Point) core.Vec2 {
	cs := g.cfg.Grid.CellSize
	return core.Vec2{
		X: float64(p.X*cs + cs/2),
		Y: float64(p.Y*cs + cs/2),
	}
}

// Bounds returns the playfield in cells.
func (g *Game) Bounds() core.Rect {
	return core.NewRect(0, 0, g.cfg.Grid.Width, g.cfg.Grid.Height)
}

func (g *Game) result(running bool) core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Running:  running,
		TickRate: g.tickRate,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// TickRate returns the advisory tick rate computed by the last tick.
func (g *Game) TickRate() int {
	return g.tickRate
}
