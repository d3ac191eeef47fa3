package main

import (
	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/arena"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// CharacterState is the kinematic state of one character after a replay
type CharacterState struct {
	Kind      entity.Kind
	Model     string
	Position  entity.Vec3
	Heading   float64
	Role      animation.Role
	Jumping   bool
	Attacking bool
}

// ReplayResult summarizes a headless replay
type ReplayResult struct {
	Frames     int
	Elapsed    float64
	Characters []CharacterState
}

// runHeadless replays data without a window. Models are taken from the
// recording, so the configured default model plays no part.
func runHeadless(cfg *config.GameConfig, data *replay.ReplayData, log *zap.Logger) ReplayResult {
	res := simulateReplay(cfg, replay.NewReplayer(*data), log)

	log.Info("replay finished",
		zap.Int("frames", res.Frames),
		zap.Float64("elapsed", res.Elapsed),
		zap.Int("loads", len(data.Loads)),
	)
	for _, c := range res.Characters {
		log.Info("final state",
			zap.Stringer("kind", c.Kind),
			zap.String("model", c.Model),
			zap.Float64("x", c.Position.X),
			zap.Float64("y", c.Position.Y),
			zap.Float64("z", c.Position.Z),
			zap.Float64("heading", c.Heading),
			zap.Stringer("role", c.Role),
			zap.Bool("jumping", c.Jumping),
			zap.Bool("attacking", c.Attacking),
		)
	}
	return res
}

// simulateReplay runs every recorded tick through a fresh simulation,
// binding recorded models at the frame they were loaded
func simulateReplay(cfg *config.GameConfig, replayer *replay.Replayer, log *zap.Logger) ReplayResult {
	w := system.NewArenaWorld(cfg)
	sim := system.NewSimulation(w, &cfg.Simulation, log)

	for {
		for _, load := range replayer.PendingLoads() {
			if !arena.ApplyLoad(sim, load) {
				log.Warn("recorded model load for unknown entity", zap.Uint32("entity", load.Entity))
			}
		}

		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		sim.Step(arena.IntentFrom(in), in.DT)
	}

	res := ReplayResult{
		Frames:  sim.Tick(),
		Elapsed: sim.Elapsed(),
	}
	for _, id := range w.CharacterIDs() {
		c := w.Character(id)
		res.Characters = append(res.Characters, CharacterState{
			Kind:      c.Kind,
			Model:     c.ModelName,
			Position:  c.Position,
			Heading:   c.Heading,
			Role:      c.Role(),
			Jumping:   c.Jumping,
			Attacking: c.Attacking,
		})
	}
	return res
}
