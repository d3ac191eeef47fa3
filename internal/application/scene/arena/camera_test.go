package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arena/internal/domain/entity"
)

func TestCamera_FollowSnapsWithoutLerp(t *testing.T) {
	c := NewCamera(entity.Vec3{}, 12, 0)

	c.Follow(entity.Vec3{X: 3, Z: -4}, tick)

	assert.Equal(t, 3.0, c.X)
	assert.Equal(t, -4.0, c.Z)
}

func TestCamera_FollowEases(t *testing.T) {
	c := NewCamera(entity.Vec3{}, 12, 5)

	c.Follow(entity.Vec3{X: 10}, 0.1)

	assert.InDelta(t, 10*(1-math.Exp(-0.5)), c.X, 1e-9)
	assert.Zero(t, c.Z)
}

func TestCamera_Project(t *testing.T) {
	c := NewCamera(entity.Vec3{}, 12, 0)

	x, y := c.Project(entity.Vec3{X: 1, Y: 3, Z: 2}, 960, 640)

	assert.Equal(t, float32(492), x)
	assert.Equal(t, float32(344), y)
}

func TestCamera_Punch(t *testing.T) {
	c := NewCamera(entity.Vec3{}, 10, 0)
	assert.Equal(t, 10.0, c.Zoom())

	c.Punch()
	assert.InDelta(t, 16.0, c.Zoom(), 1e-9)

	c.Update(zoomDuration / 2)
	assert.Less(t, c.Zoom(), 16.0)
	assert.Greater(t, c.Zoom(), 10.0)

	c.Update(zoomDuration)
	assert.Equal(t, 10.0, c.Zoom())
}
