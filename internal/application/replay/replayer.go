package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrEmptyReplay is returned when saving or loading a recording without frames
var ErrEmptyReplay = errors.New("replay has no frames")

// ReplayInput is one tick of recorded intent
type ReplayInput struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Run       bool
	Jump      bool
	Attack    bool
	DT        float64
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	load  int // next entry in data.Loads
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyReplay)
	}

	return &data, nil
}

// SaveReplay writes replay data to a file as indented JSON
func SaveReplay(filename string, data *ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmptyReplay
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Forward:   fi.Fw,
		Backward:  fi.Bw,
		TurnLeft:  fi.TL,
		TurnRight: fi.TR,
		Run:       fi.Run,
		Jump:      fi.J,
		Attack:    fi.A,
		DT:        fi.DT,
	}, true
}

// PendingLoads returns the model loads to apply before the next GetInput
// and marks them applied
func (r *Replayer) PendingLoads() []ModelLoad {
	start := r.load
	for r.load < len(r.data.Loads) && r.data.Loads[r.load].F <= r.frame {
		r.load++
	}
	return r.data.Loads[start:r.load]
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the recording being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.load = 0
}

// CreateTestReplayData creates replay data for testing (idle player at a fixed dt)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Arena:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
		}
	}

	return data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
