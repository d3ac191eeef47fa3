package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
)

func createTestWorld() *World {
	return NewWorld(&entity.Arena{
		Obstacle:    entity.Obstacle{Radius: 1},
		HalfExtent:  50,
		PlayerSpawn: entity.Vec3{X: 0, Z: 5},
		EnemySpawn:  entity.Vec3{X: 10, Z: 10},
	})
}

func testEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Tuning:         entity.Tuning{MoveSpeed: 3, RotationSpeed: 3},
		AttackDistance: 2,
		FollowDistance: 15,
		TurnRate:       5,
		Cooldown:       2,
	}
}

func TestNewWorld(t *testing.T) {
	w := createTestWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Characters)
	assert.NotNil(t, w.IsPlayer)
	assert.Nil(t, w.Player())
}

func TestNewEntity(t *testing.T) {
	w := createTestWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := createTestWorld()

	id1 := w.CreateEnemy(entity.Vec3{X: 10}, 0, testEnemyConfig())
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestCreatePlayer(t *testing.T) {
	w := createTestWorld()
	id := w.CreatePlayer(entity.Tuning{MoveSpeed: 5})

	p := w.Player()
	require.NotNil(t, p)
	assert.Equal(t, id, w.PlayerID)
	assert.Equal(t, entity.KindPlayer, p.Kind)
	assert.Equal(t, entity.Vec3{X: 0, Z: 5}, p.Position)
	assert.Equal(t, 5.0, p.Tuning.MoveSpeed)
	_, tagged := w.IsPlayer[id]
	assert.True(t, tagged)
}

func TestCreateEnemy(t *testing.T) {
	w := createTestWorld()
	id := w.CreateEnemy(entity.Vec3{X: 10, Z: 10}, 1.5, testEnemyConfig())

	c := w.Character(id)
	require.NotNil(t, c)
	assert.Equal(t, entity.KindEnemy, c.Kind)
	assert.Equal(t, 1.5, c.Heading)

	ai := w.EnemyAI[id]
	require.NotNil(t, ai)
	assert.Equal(t, 2.0, ai.AttackDistance)
	assert.True(t, ai.Ready())
	assert.Equal(t, 1, w.CountEnemies())
}

func TestDestroyEntity(t *testing.T) {
	w := createTestWorld()
	pid := w.CreatePlayer(entity.Tuning{})
	eid := w.CreateEnemy(entity.Vec3{X: 10}, 0, testEnemyConfig())

	require.True(t, w.Exists(eid))
	w.DestroyEntity(eid)

	assert.False(t, w.Exists(eid))
	_, hasAI := w.EnemyAI[eid]
	assert.False(t, hasAI)
	_, isEnemy := w.IsEnemy[eid]
	assert.False(t, isEnemy)

	w.DestroyEntity(pid)
	assert.Nil(t, w.Player())
	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestEnemyIDsSorted(t *testing.T) {
	w := createTestWorld()
	w.CreatePlayer(entity.Tuning{})
	for i := 0; i < 5; i++ {
		w.CreateEnemy(entity.Vec3{X: float64(10 + i)}, 0, testEnemyConfig())
	}

	ids := w.EnemyIDs()
	require.Len(t, ids, 5)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Len(t, w.CharacterIDs(), 6)
}

func TestWorldsAreIndependent(t *testing.T) {
	a := createTestWorld()
	b := createTestWorld()

	a.CreatePlayer(entity.Tuning{})
	a.Player().Position.X = 7

	b.CreatePlayer(entity.Tuning{})
	assert.Equal(t, 0.0, b.Player().Position.X)
	assert.NotSame(t, a.Player(), b.Player())
}
