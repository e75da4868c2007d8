package snake

import (
	"math/rand"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Particle is one spark of the fruit burst, in notional pixel space.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int
}

// spawnBurst appends n particles at center with velocity components uniform
// in [-speed, speed].
func spawnBurst(ps []Particle, rng *rand.Rand, center core.Vec2, n, life int, speed float64) []Particle {
	for i := 0; i < n; i++ {
		ps = append(ps, Particle{
			Pos: center,
			Vel: core.Vec2{
				X: (rng.Float64()*2 - 1) * speed,
				Y: (rng.Float64()*2 - 1) * speed,
			},
			Life: life,
		})
	}
	return ps
}

// updateParticles moves every particle, ages it and swap-removes the dead
// ones. Order is not preserved.
func updateParticles(ps []Particle) []Particle {
	for i := 0; i < len(ps); {
		p := &ps[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			last := len(ps) - 1
			ps[i] = ps[last]
			ps = ps[:last]
			continue
		}
		i++
	}
	return ps
}
