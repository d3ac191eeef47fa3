package arena

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorGround  = color.RGBA{46, 74, 52, 255}
	colorBorder  = color.RGBA{120, 140, 120, 255}
	colorTrunk   = color.RGBA{110, 72, 40, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorEnemy   = color.RGBA{200, 100, 100, 255}
	colorAttack  = color.RGBA{255, 215, 0, 255}
	colorShadow  = color.RGBA{0, 0, 0, 90}
	colorHeading = color.RGBA{240, 240, 240, 255}
)

const (
	characterRadius = 0.5 // world units
	jumpScale       = 0.25
)

// renderer draws the arena from above
type renderer struct {
	camera  *Camera
	screenW int
	screenH int
}

func (r *renderer) drawArena(screen *ebiten.Image, a *entity.Arena) {
	screen.Fill(colorBG)

	h := a.HalfExtent
	x0, y0 := r.camera.Project(entity.Vec3{X: -h, Z: -h}, r.screenW, r.screenH)
	x1, y1 := r.camera.Project(entity.Vec3{X: h, Z: h}, r.screenW, r.screenH)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colorGround, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, colorBorder, false)

	cx, cy := r.camera.Project(a.Obstacle.Center, r.screenW, r.screenH)
	vector.DrawFilledCircle(screen, cx, cy, float32(a.Obstacle.Radius*r.camera.Zoom()), colorTrunk, true)
}

func (r *renderer) drawCharacter(screen *ebiten.Image, c *entity.Character) {
	x, y := r.camera.Project(c.Position, r.screenW, r.screenH)
	zoom := r.camera.Zoom()
	radius := float32(characterRadius * zoom)

	// Shadow stays on the ground; the body grows with height
	vector.DrawFilledCircle(screen, x, y, radius, colorShadow, true)
	body := radius * float32(1+c.Position.Y*jumpScale)

	fill := colorPlayer
	if c.Kind == entity.KindEnemy {
		fill = colorEnemy
	}
	vector.DrawFilledCircle(screen, x, y, body, fill, true)
	if c.Attacking {
		vector.StrokeCircle(screen, x, y, body+2, 2, colorAttack, true)
	}

	tip := c.Position.Add(system.Forward(c.Heading).Scale(characterRadius * 1.6))
	tx, ty := r.camera.Project(tip, r.screenW, r.screenH)
	vector.StrokeLine(screen, x, y, tx, ty, 2, colorHeading, true)
}
