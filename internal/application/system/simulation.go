package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Simulation advances one world by whole ticks
type Simulation struct {
	World      *ecs.World
	Motor      *MotorSystem
	Characters *CharacterSystem
	Enemies    *EnemySystem

	tick    int
	elapsed float64
}

// NewSimulation wires the systems around w
func NewSimulation(w *ecs.World, cfg *config.SimulationConfig, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	motor := NewMotorSystem(w.Arena)
	chars := NewCharacterSystem(cfg, motor, log.Named("character"))
	return &Simulation{
		World:      w,
		Motor:      motor,
		Characters: chars,
		Enemies:    NewEnemySystem(chars, motor, log.Named("enemy")),
	}
}

// Step runs one tick: the player first, then every enemy against the
// player's updated position, then animation playback.
func (s *Simulation) Step(in Intent, dt float64) {
	if dt < 0 {
		dt = 0
	}

	if p := s.World.Player(); p != nil {
		s.Characters.UpdatePlayer(p, in, dt)
	}

	s.Enemies.Update(s.World, dt)

	for _, id := range s.World.CharacterIDs() {
		s.World.Characters[id].Anim.Update(dt)
	}

	s.tick++
	s.elapsed += dt
}

// Tick returns the number of steps taken
func (s *Simulation) Tick() int {
	return s.tick
}

// Elapsed returns the simulated time in seconds
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}
