package arena

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/arena/internal/domain/entity"
)

const controlsText = "W/S: Move | A/D: Turn | Shift: Run | Space: Jump | F/Click: Attack | Drop .glb/.gltf: Load model | F5: Save replay | ESC: Pause"

var (
	colorText    = color.RGBA{230, 230, 230, 255}
	colorInfo    = color.RGBA{40, 90, 60, 220}
	colorError   = color.RGBA{130, 40, 40, 220}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// hud draws text on top of the arena
type hud struct {
	face      *text.GoTextFace
	smallFace *text.GoTextFace
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &hud{
		face:      &text.GoTextFace{Source: src, Size: 16},
		smallFace: &text.GoTextFace{Source: src, Size: 12},
	}, nil
}

func (h *hud) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Size * 1.4
	text.Draw(screen, s, face, op)
}

// drawLabel prints the role above a character
func (h *hud) drawLabel(screen *ebiten.Image, c *entity.Character, x, y float32) {
	label := c.Role().String()
	w, _ := text.Measure(label, h.smallFace, 0)
	h.drawText(screen, label, h.smallFace, float64(x)-w/2, float64(y)-28, colorText)
}

// statusLines describes every character's model and bound roles.
// loading may be nil.
func statusLines(chars []*entity.Character, loading func(*entity.Character) bool) []string {
	lines := make([]string, 0, len(chars))
	for _, c := range chars {
		model := c.ModelName
		if model == "" {
			model = "no model"
		}
		if loading != nil && loading(c) {
			model += " (loading...)"
		}
		roles := make([]string, 0, c.Anim.Set().Len())
		for _, r := range c.Anim.Set().Bound() {
			roles = append(roles, r.String())
		}
		bound := "none"
		if len(roles) > 0 {
			bound = strings.Join(roles, ", ")
		}
		lines = append(lines, fmt.Sprintf("%s [%s] %s: %s", c.Kind, c.Role(), model, bound))
	}
	return lines
}

func (h *hud) drawStatus(screen *ebiten.Image, chars []*entity.Character, loading func(*entity.Character) bool, screenH int) {
	h.drawText(screen, controlsText, h.smallFace, 10, 8, colorText)
	for i, line := range statusLines(chars, loading) {
		h.drawText(screen, line, h.face, 10, float64(screenH-28*(len(chars)-i)), colorText)
	}
}

func (h *hud) drawToasts(screen *ebiten.Image, toasts []*Toast, screenW int) {
	y := 36.0
	for _, t := range toasts {
		w, th := text.Measure(t.Text, h.face, h.face.Size*1.4)
		x := float64(screenW) - w - 24

		bg := colorInfo
		if t.Kind == ToastError {
			bg = colorError
		}
		bg.A = uint8(float32(bg.A) * t.Alpha())
		vector.DrawFilledRect(screen, float32(x-8), float32(y-4), float32(w+16), float32(th+8), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(colorText)
		op.ColorScale.ScaleAlpha(t.Alpha())
		text.Draw(screen, t.Text, h.face, op)

		y += th + 14
	}
}

func (h *hud) drawOverlay(screen *ebiten.Image, msg string, screenW, screenH int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenW), float32(screenH), colorOverlay, false)
	w, _ := text.Measure(msg, h.face, h.face.Size*1.4)
	h.drawText(screen, msg, h.face, (float64(screenW)-w)/2, float64(screenH)/2-20, colorText)
}
