package arena

import (
	"time"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/ecs"
)

// Recorder captures the intent and elapsed time of every tick
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for the named arena
func NewRecorder(arena string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Arena:     arena,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single tick
func (r *Recorder) RecordFrame(in system.Intent, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:   r.frame,
		Fw:  in.Forward,
		Bw:  in.Backward,
		TL:  in.TurnLeft,
		TR:  in.TurnRight,
		Run: in.Run,
		J:   in.Jump,
		A:   in.Attack,
		DT:  dt,
	})
	r.frame++
}

// RecordLoad notes that a model became active for id before the next
// recorded frame. Only clip names and durations are kept; they are all the
// simulation reads from a model.
func (r *Recorder) RecordLoad(id ecs.EntityID, name string, clips []animation.Clip) {
	if !r.recording {
		return
	}

	load := replay.ModelLoad{
		F:      r.frame,
		Entity: uint32(id),
		Model:  name,
		Clips:  make([]replay.ClipInput, len(clips)),
	}
	for i, c := range clips {
		load.Clips[i] = replay.ClipInput{Name: c.Name, Duration: c.Duration}
	}
	r.data.Loads = append(r.data.Loads, load)
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, &r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording (for testing)
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// ApplyLoad binds a recorded model's clips to its character, the same way a
// finished live load does. It returns false if the character does not exist.
func ApplyLoad(sim *system.Simulation, load replay.ModelLoad) bool {
	c := sim.World.Character(ecs.EntityID(load.Entity))
	if c == nil {
		return false
	}

	clips := make([]animation.Clip, len(load.Clips))
	for i, ci := range load.Clips {
		clips[i] = animation.Clip{Name: ci.Name, Duration: ci.Duration}
	}
	sim.Characters.Rebind(c, animation.Classify(clips))
	c.ModelName = load.Model
	return true
}

// IntentFrom converts a recorded tick back into an intent
func IntentFrom(in replay.ReplayInput) system.Intent {
	return system.Intent{
		Forward:   in.Forward,
		Backward:  in.Backward,
		TurnLeft:  in.TurnLeft,
		TurnRight: in.TurnRight,
		Run:       in.Run,
		Jump:      in.Jump,
		Attack:    in.Attack,
	}
}
