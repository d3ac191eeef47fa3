package arena

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toastHold = 2.5 // seconds fully visible
	toastFade = 0.7
	maxToasts = 4
)

// ToastKind picks the toast color
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// Toast is a short notification that fades out on its own
type Toast struct {
	Text string
	Kind ToastKind

	hold  float64
	fade  *gween.Tween
	alpha float32
}

// Alpha returns the current opacity in [0, 1]
func (t *Toast) Alpha() float32 {
	return t.alpha
}

// update returns false once the toast has fully faded
func (t *Toast) update(dt float64) bool {
	if t.hold > 0 {
		t.hold -= dt
		if t.hold > 0 {
			return true
		}
		dt = -t.hold
		t.fade = gween.New(1, 0, toastFade, ease.InQuad)
	}

	cur, done := t.fade.Update(float32(dt))
	t.alpha = cur
	return !done
}

// Toasts is a short stack of notifications, newest last
type Toasts struct {
	items []*Toast
}

// Push adds a toast, dropping the oldest when full
func (ts *Toasts) Push(text string, kind ToastKind) {
	if len(ts.items) == maxToasts {
		ts.items = ts.items[1:]
	}
	ts.items = append(ts.items, &Toast{
		Text:  text,
		Kind:  kind,
		hold:  toastHold,
		alpha: 1,
	})
}

// Update advances every toast and drops the faded ones
func (ts *Toasts) Update(dt float64) {
	live := ts.items[:0]
	for _, t := range ts.items {
		if t.update(dt) {
			live = append(live, t)
		}
	}
	ts.items = live
}

// Items returns the visible toasts, oldest first
func (ts *Toasts) Items() []*Toast {
	return ts.items
}
