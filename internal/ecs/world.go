package ecs

import (
	"sort"

	"github.com/younwookim/arena/internal/domain/entity"
)

// EntityID aliases the domain ID so callers need one import
type EntityID = entity.EntityID

// World is the simulation context: every piece of per-character state
// lives here, so several worlds can run side by side in one process.
type World struct {
	nextID EntityID

	// Components
	Characters map[EntityID]*entity.Character
	EnemyAI    map[EntityID]*entity.EnemyAI

	// Tags
	IsPlayer map[EntityID]struct{}
	IsEnemy  map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
	Arena    *entity.Arena
}

// NewWorld creates a new empty world around a static arena
func NewWorld(arena *entity.Arena) *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Characters: make(map[EntityID]*entity.Character),
		EnemyAI:    make(map[EntityID]*entity.EnemyAI),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		Arena:      arena,
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Characters, id)
	delete(w.EnemyAI, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a Character component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Characters[id]
	return ok
}

// CreatePlayer creates the player character at the arena's player spawn
func (w *World) CreatePlayer(tuning entity.Tuning) EntityID {
	id := w.NewEntity()

	w.Characters[id] = entity.NewCharacter(id, entity.KindPlayer, w.Arena.PlayerSpawn, 0, tuning)
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// EnemyConfig holds configuration for creating an enemy
type EnemyConfig struct {
	Tuning         entity.Tuning
	AttackDistance float64
	FollowDistance float64
	TurnRate       float64 // rad/s
	Cooldown       float64 // seconds
}

// CreateEnemy creates an AI-driven character at pos
func (w *World) CreateEnemy(pos entity.Vec3, heading float64, cfg EnemyConfig) EntityID {
	id := w.NewEntity()

	w.Characters[id] = entity.NewCharacter(id, entity.KindEnemy, pos, heading, cfg.Tuning)
	w.EnemyAI[id] = entity.NewEnemyAI(cfg.AttackDistance, cfg.FollowDistance, cfg.TurnRate, cfg.Cooldown)
	w.IsEnemy[id] = struct{}{}

	return id
}

// Player returns the player character, or nil if none was created
func (w *World) Player() *entity.Character {
	return w.Characters[w.PlayerID]
}

// Character returns the character for id, or nil
func (w *World) Character(id EntityID) *entity.Character {
	return w.Characters[id]
}

// EnemyIDs returns all enemy IDs in creation order
func (w *World) EnemyIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.IsEnemy))
	for id := range w.IsEnemy {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CharacterIDs returns every character ID in creation order
func (w *World) CharacterIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Characters))
	for id := range w.Characters {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CountEnemies returns the number of enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}
