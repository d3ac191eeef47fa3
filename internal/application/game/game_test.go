package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arena/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
	dts           []float64
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.dts = append(m.dts, dt)
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// fakeClock advances by a scripted step on every read
type fakeClock struct {
	now   time.Time
	steps []time.Duration
}

func (c *fakeClock) read() time.Time {
	if len(c.steps) > 0 {
		c.now = c.now.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.now
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, 0.1)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, 0.1)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240, 0.1)

	g.Draw(nil)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 320, 240, 0.1)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 320, 240, 0.1)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")

	g.Close()
	assert.Equal(t, 1, scene2.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	g := New(&mockScene{updateErr: assert.AnError}, 320, 240, 0.1)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_WallClockDelta(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 0.1)
	clock := &fakeClock{
		now: time.Unix(1000, 0),
		steps: []time.Duration{
			0,
			16 * time.Millisecond,
			20 * time.Millisecond,
			5 * time.Second, // stall
			-time.Second,    // clock went backwards
		},
	}
	g.SetClock(clock.read)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	require.Len(t, s.dts, 5)
	assert.Zero(t, s.dts[0], "first tick has no history")
	assert.InDelta(t, 0.016, s.dts[1], 1e-9)
	assert.InDelta(t, 0.020, s.dts[2], 1e-9)
	assert.Equal(t, 0.1, s.dts[3], "stall is clamped")
	assert.Zero(t, s.dts[4])
}

func TestGame_ClampDisabled(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 0)
	clock := &fakeClock{now: time.Unix(0, 0), steps: []time.Duration{0, 3 * time.Second}}
	g.SetClock(clock.read)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.InDelta(t, 3.0, s.dts[1], 1e-9)
}

func TestGame_SetDT(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 0.1)
	g.SetDT(1.0 / 30.0)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []float64{1.0 / 30.0, 1.0 / 30.0}, s.dts)
}
