package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/domain/entity"
)

const tick = 1.0 / 60.0

func createTestArena() *entity.Arena {
	return &entity.Arena{
		Obstacle:    entity.Obstacle{Radius: 1},
		HalfExtent:  50,
		PlayerSpawn: entity.Vec3{Z: 5},
		EnemySpawn:  entity.Vec3{X: 10, Z: 10},
	}
}

func createTestCharacter(pos entity.Vec3) *entity.Character {
	return entity.NewCharacter(1, entity.KindPlayer, pos, 0, entity.Tuning{
		MoveSpeed:     5,
		RunSpeed:      10,
		RotationSpeed: 3,
		JumpSpeed:     5,
		Gravity:       9.8,
	})
}

func bindAll(c *entity.Character, attackDuration float64) {
	c.Anim.Rebind(animation.Classify([]animation.Clip{
		{Name: "Idle", Duration: 2},
		{Name: "Walk", Duration: 1},
		{Name: "Run", Duration: 0.7},
		{Name: "Jump", Duration: 1.1},
		{Name: "Attack", Duration: attackDuration},
	}))
}

func TestForward(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		x, z    float64
	}{
		{"zero faces -z", 0, 0, -1},
		{"quarter left faces -x", math.Pi / 2, -1, 0},
		{"half turn faces +z", math.Pi, 0, 1},
		{"quarter right faces +x", -math.Pi / 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Forward(tt.heading)
			assert.InDelta(t, tt.x, f.X, 1e-9)
			assert.InDelta(t, tt.z, f.Z, 1e-9)
			assert.Zero(t, f.Y)
		})
	}
}

func TestMotorSystem_Rotate(t *testing.T) {
	sys := NewMotorSystem(createTestArena())
	c := createTestCharacter(entity.Vec3{Z: 5})

	sys.Rotate(c, 1, 0.5)
	assert.InDelta(t, 1.5, c.Heading, 1e-9)

	sys.Rotate(c, -1, 1)
	assert.InDelta(t, -1.5, c.Heading, 1e-9)

	sys.Rotate(c, 0, 1)
	assert.InDelta(t, -1.5, c.Heading, 1e-9)
}

func TestMotorSystem_TryMove(t *testing.T) {
	sys := NewMotorSystem(createTestArena())

	tests := []struct {
		name  string
		from  entity.Vec3
		delta entity.Vec3
		ok    bool
	}{
		{"open ground", entity.Vec3{Z: 5}, entity.Vec3{Z: -1}, true},
		{"into trunk", entity.Vec3{Z: 1.5}, entity.Vec3{Z: -1}, false},
		{"onto trunk edge", entity.Vec3{Z: 2}, entity.Vec3{Z: -1}, false},
		{"through boundary", entity.Vec3{X: 49.5}, entity.Vec3{X: 1}, false},
		{"onto boundary", entity.Vec3{Z: -49}, entity.Vec3{Z: -1}, false},
		{"along boundary", entity.Vec3{X: 49.5, Z: 10}, entity.Vec3{Z: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestCharacter(tt.from)
			ok := sys.TryMove(c, tt.delta)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.from.X+tt.delta.X, c.Position.X, 1e-9)
				assert.InDelta(t, tt.from.Z+tt.delta.Z, c.Position.Z, 1e-9)
			} else {
				assert.Equal(t, tt.from, c.Position, "rejected move must not slide")
			}
		})
	}
}

func TestMotorSystem_TryMoveKeepsHeight(t *testing.T) {
	sys := NewMotorSystem(createTestArena())
	c := createTestCharacter(entity.Vec3{Z: 5})
	c.Position.Y = 1.2

	require.True(t, sys.TryMove(c, entity.Vec3{X: 1, Y: 5}))
	assert.Equal(t, 1.2, c.Position.Y)
}

func TestMotorSystem_Move(t *testing.T) {
	sys := NewMotorSystem(createTestArena())

	t.Run("walks forward", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 10})
		sys.Move(c, Intent{Forward: true}, 1)

		assert.InDelta(t, 5.0, c.Position.Z, 1e-9)
		assert.InDelta(t, -5.0, c.Velocity.Z, 1e-9)
	})

	t.Run("backward inverts", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 10})
		sys.Move(c, Intent{Backward: true}, 1)

		assert.InDelta(t, 15.0, c.Position.Z, 1e-9)
	})

	t.Run("run needs a run clip", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 20})
		sys.Move(c, Intent{Forward: true, Run: true}, 1)
		assert.InDelta(t, 15.0, c.Position.Z, 1e-9)

		bindAll(c, 0.8)
		sys.Move(c, Intent{Forward: true, Run: true}, 1)
		assert.InDelta(t, 5.0, c.Position.Z, 1e-9)
	})

	t.Run("no intent clears velocity", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 10})
		c.Velocity = entity.Vec3{X: 3}

		assert.True(t, sys.Move(c, Intent{}, 1))
		assert.Equal(t, entity.Vec3{}, c.Velocity)
		assert.Equal(t, 10.0, c.Position.Z)
	})

	t.Run("blocked by trunk", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 1.5})
		c.Velocity = entity.Vec3{Z: -5}
		assert.False(t, sys.Move(c, Intent{Forward: true}, 0.2))
		assert.Equal(t, 1.5, c.Position.Z)
		assert.Equal(t, entity.Vec3{}, c.Velocity)
	})
}

func TestMotorSystem_AdvanceBlockedClearsVelocity(t *testing.T) {
	sys := NewMotorSystem(createTestArena())

	t.Run("trunk", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 1.5})
		require.False(t, sys.Advance(c, 5, 1, 0.2))
		assert.Equal(t, entity.Vec3{Z: 1.5}, c.Position)
		assert.Equal(t, entity.Vec3{}, c.Velocity)
	})

	t.Run("arena edge", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 49.9})
		c.Velocity = entity.Vec3{Z: 5}
		require.False(t, sys.Advance(c, 5, -1, 0.2))
		assert.Equal(t, entity.Vec3{Z: 49.9}, c.Position)
		assert.Equal(t, entity.Vec3{}, c.Velocity)
	})

	t.Run("accepted move keeps velocity", func(t *testing.T) {
		c := createTestCharacter(entity.Vec3{Z: 10})
		require.True(t, sys.Advance(c, 5, 1, 0.2))
		assert.InDelta(t, -5.0, c.Velocity.Z, 1e-9)
	})
}

func TestMotorSystem_JumpArc(t *testing.T) {
	sys := NewMotorSystem(createTestArena())
	c := createTestCharacter(entity.Vec3{Z: 5})

	sys.Launch(c)
	require.True(t, c.Jumping)
	assert.Equal(t, 5.0, c.VerticalVelocity)

	elapsed := 0.0
	peak := 0.0
	for i := 0; i < 600; i++ {
		landed := sys.ApplyGravity(c, tick)
		elapsed += tick
		if landed {
			break
		}
		require.True(t, c.Jumping, "must stay airborne until the landing tick")
		require.Greater(t, c.Position.Y, 0.0)
		peak = math.Max(peak, c.Position.Y)
	}

	assert.False(t, c.Jumping)
	assert.Zero(t, c.Position.Y)
	assert.Zero(t, c.VerticalVelocity)
	assert.InDelta(t, 2*5/9.8, elapsed, 2*tick)
	assert.InDelta(t, 5*5/(2*9.8), peak, 0.06)
}

func TestMotorSystem_ApplyGravityGrounded(t *testing.T) {
	sys := NewMotorSystem(createTestArena())
	c := createTestCharacter(entity.Vec3{Z: 5})

	assert.False(t, sys.ApplyGravity(c, 1))
	assert.Zero(t, c.Position.Y)
	assert.Zero(t, c.VerticalVelocity)
}
