// Package arena provides the arena scene: two characters, one tree, and a
// drop target for animated models.
package arena

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/model"
)

// Name is written into recordings made in this scene
const Name = "tree"

// Options configures optional scene features
type Options struct {
	// RecordPath enables recording; F5 and scene exit save to it.
	RecordPath string
	// Replay plays a recording instead of reading the keyboard.
	Replay *replay.ReplayData
	// Loader options, e.g. a custom decoder
	Loader []model.LoaderOption
}

// Arena is the main scene
type Arena struct {
	config  *config.GameConfig
	log     *zap.Logger
	state   state.GameState
	resume  state.GameState
	screenW int
	screenH int

	world  *ecs.World
	sim    *system.Simulation
	input  *system.InputSystem
	loader *model.Loader
	ctx    context.Context
	cancel context.CancelFunc

	camera   *Camera
	renderer *renderer
	hud      *hud
	toasts   Toasts

	recorder   *Recorder
	recordPath string
	replayer   *replay.Replayer
	replayDone bool
}

// New builds the world and systems from cfg
func New(cfg *config.GameConfig, log *zap.Logger, opts Options) (*Arena, error) {
	if log == nil {
		log = zap.NewNop()
	}

	h, err := newHUD()
	if err != nil {
		return nil, err
	}

	w := system.NewArenaWorld(cfg)
	camera := NewCamera(w.Player().Position, cfg.Display.PixelsPerUnit, cfg.Display.CameraLerp)
	ctx, cancel := context.WithCancel(context.Background())

	a := &Arena{
		config:  cfg,
		log:     log,
		state:   state.StatePlaying,
		resume:  state.StatePlaying,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		world:   w,
		sim:     system.NewSimulation(w, &cfg.Simulation, log),
		input:   system.NewInputSystem(),
		loader:  model.NewLoader(log.Named("loader"), opts.Loader...),
		ctx:     ctx,
		cancel:  cancel,
		camera:  camera,
		renderer: &renderer{
			camera:  camera,
			screenW: cfg.Display.ScreenWidth,
			screenH: cfg.Display.ScreenHeight,
		},
		hud:        h,
		recordPath: opts.RecordPath,
	}

	switch {
	case opts.Replay != nil:
		a.replayer = replay.NewReplayer(*opts.Replay)
		a.state = state.StateReplaying
		a.resume = state.StateReplaying
		log.Info("replaying", zap.Int("frames", a.replayer.TotalFrames()))
	case opts.RecordPath != "":
		a.recorder = NewRecorder(Name)
		log.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	return a, nil
}

// Update proceeds the scene (implements scene.Scene)
func (a *Arena) Update(dt float64) (scene.Scene, error) {
	a.drainLoads()

	if files := ebiten.DroppedFiles(); files != nil {
		a.HandleDropped(files)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.TogglePause()
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.saveRecording()
	}

	switch a.state {
	case state.StatePlaying:
		a.Tick(system.MapIntent(a.input.GetInput()), dt)
	case state.StateReplaying:
		a.stepReplay()
	}

	a.camera.Update(dt)
	a.toasts.Update(dt)

	return nil, nil // nil = stay on this scene
}

// Tick runs one simulation step with the given intent
func (a *Arena) Tick(in system.Intent, dt float64) {
	if a.recorder != nil {
		a.recorder.RecordFrame(in, dt)
	}

	a.sim.Step(in, dt)

	if p := a.world.Player(); p != nil {
		a.camera.Follow(p.Position, dt)
	}
}

func (a *Arena) stepReplay() {
	if a.replayDone {
		return
	}

	for _, load := range a.replayer.PendingLoads() {
		if !ApplyLoad(a.sim, load) {
			a.log.Warn("recorded model load for unknown entity", zap.Uint32("entity", load.Entity))
			continue
		}
		if c := a.world.Character(ecs.EntityID(load.Entity)); c.Kind == entity.KindPlayer {
			a.announce(c.ModelName, c.Anim.Set())
		}
	}

	in, ok := a.replayer.GetInput()
	if !ok {
		a.replayDone = true
		a.toasts.Push("Replay finished", ToastInfo)
		a.log.Info("replay finished",
			zap.Int("frames", a.replayer.TotalFrames()),
			zap.Float64("elapsed", a.sim.Elapsed()),
		)
		return
	}

	a.Tick(IntentFrom(in), in.DT)
}

// TogglePause pauses a ticking scene or resumes a paused one
func (a *Arena) TogglePause() {
	if a.state == state.StatePaused {
		a.state = a.resume
		return
	}
	a.resume = a.state
	a.state = state.StatePaused
}

// State returns the current scene state
func (a *Arena) State() state.GameState {
	return a.state
}

// World returns the simulated world
func (a *Arena) World() *ecs.World {
	return a.world
}

// HandleDropped loads the first model file found in fsys for every
// character. Files of other types are rejected before any load starts.
func (a *Arena) HandleDropped(fsys fs.FS) {
	if a.replayer != nil {
		a.toasts.Push("Models cannot be changed during a replay", ToastError)
		return
	}

	var found string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, err := model.CheckFormat(path); err != nil {
			a.log.Warn("dropped file rejected", zap.String("file", path), zap.Error(err))
			a.toasts.Push(fmt.Sprintf("Unsupported file: %s (use .glb or .gltf)", d.Name()), ToastError)
			return nil
		}
		found = path
		return fs.SkipAll
	})
	if err != nil {
		a.log.Warn("failed to read dropped files", zap.Error(err))
		a.toasts.Push("Could not read dropped files", ToastError)
		return
	}

	if found != "" {
		a.LoadModel(model.FSSource{FS: fsys, Path: found})
	}
}

// LoadModel starts loading src for the player, then the enemy. Earlier
// loads still in flight are superseded.
func (a *Arena) LoadModel(src model.Source) {
	for _, id := range a.world.CharacterIDs() {
		a.loader.Load(a.ctx, model.Slot(id), src)
	}
	a.toasts.Push("Loading "+src.Name()+"...", ToastInfo)
}

// drainLoads applies finished model loads. A failed load leaves the
// character's previous model and animations in place.
func (a *Arena) drainLoads() {
	for _, r := range a.loader.Poll() {
		c := a.world.Character(ecs.EntityID(r.Slot))
		if c == nil {
			continue
		}

		if r.Err != nil {
			if errors.Is(r.Err, context.Canceled) {
				continue
			}
			a.log.Warn("model load failed",
				zap.Stringer("kind", c.Kind),
				zap.String("source", r.Source),
				zap.Error(r.Err),
			)
			if c.Kind == entity.KindPlayer {
				a.toasts.Push(fmt.Sprintf("Failed to load %s", r.Source), ToastError)
			}
			continue
		}

		set := animation.Classify(r.Model.Clips)
		a.sim.Characters.Rebind(c, set)
		c.ModelName = r.Model.Name
		if a.recorder != nil {
			a.recorder.RecordLoad(c.ID, r.Model.Name, r.Model.Clips)
		}

		if c.Kind == entity.KindPlayer {
			a.announce(r.Model.Name, set)
		}
	}
}

func (a *Arena) announce(name string, set animation.Set) {
	a.toasts.Push(loadedMessage(name, set), ToastInfo)
	a.camera.Punch()
}

func loadedMessage(name string, set animation.Set) string {
	if set.Len() == 0 {
		return fmt.Sprintf("Loaded %s: no animations found", name)
	}
	roles := make([]string, 0, set.Len())
	for _, r := range set.Bound() {
		roles = append(roles, r.String())
	}
	return fmt.Sprintf("Loaded %s: %s", name, strings.Join(roles, ", "))
}

// loading reports whether a model load for c is still in flight
func (a *Arena) loading(c *entity.Character) bool {
	return a.loader.Pending(model.Slot(c.ID))
}

// saveRecording saves the current recording to file
func (a *Arena) saveRecording() {
	if a.recorder == nil {
		return
	}

	if err := a.recorder.Save(a.recordPath); err != nil {
		a.log.Warn("failed to save recording", zap.String("path", a.recordPath), zap.Error(err))
		return
	}
	a.log.Info("recording saved",
		zap.String("path", a.recordPath),
		zap.Int("frames", a.recorder.FrameCount()),
	)
	a.toasts.Push("Replay saved: "+a.recordPath, ToastInfo)
}

// Draw renders the arena
func (a *Arena) Draw(screen *ebiten.Image) {
	a.renderer.drawArena(screen, a.world.Arena)

	chars := make([]*entity.Character, 0, len(a.world.Characters))
	for _, id := range a.world.CharacterIDs() {
		c := a.world.Characters[id]
		chars = append(chars, c)
		a.renderer.drawCharacter(screen, c)
		x, y := a.camera.Project(c.Position, a.screenW, a.screenH)
		a.hud.drawLabel(screen, c, x, y)
	}

	a.hud.drawStatus(screen, chars, a.loading, a.screenH)
	if a.recorder != nil && a.recorder.IsRecording() {
		msg := fmt.Sprintf("REC %d", a.recorder.FrameCount())
		a.hud.drawText(screen, msg, a.hud.face, float64(a.screenW)-90, 8, colorError)
	}
	a.hud.drawToasts(screen, a.toasts.Items(), a.screenW)

	switch {
	case a.state == state.StatePaused:
		a.hud.drawOverlay(screen, "PAUSED\n\nPress ESC to resume", a.screenW, a.screenH)
	case a.replayer != nil:
		msg := fmt.Sprintf("REPLAY %d/%d", a.replayer.CurrentFrame(), a.replayer.TotalFrames())
		a.hud.drawText(screen, msg, a.hud.face, float64(a.screenW)/2-40, 30, colorAttack)
	}
}

// OnEnter starts loading the configured default model, if any.
// A replay brings its own models.
func (a *Arena) OnEnter() {
	if a.replayer != nil {
		return
	}
	if path := a.config.Model.DefaultPath; path != "" {
		a.LoadModel(model.FileSource{Path: path})
	}
}

// OnExit saves the recording and stops outstanding loads
func (a *Arena) OnExit() {
	a.saveRecording()
	if a.recorder != nil {
		a.recorder.Stop()
	}
	a.loader.Close()
	a.cancel()
}
