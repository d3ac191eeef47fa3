package replay

// Version is written into every recording
const Version = "2.1"

// FrameInput records the intent and elapsed time of a single tick
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	Fw  bool    `json:"fw,omitempty"`  // Forward
	Bw  bool    `json:"bw,omitempty"`  // Backward
	TL  bool    `json:"tl,omitempty"`  // TurnLeft
	TR  bool    `json:"tr,omitempty"`  // TurnRight
	Run bool    `json:"run,omitempty"` // Run modifier
	J   bool    `json:"j,omitempty"`   // Jump edge
	A   bool    `json:"a,omitempty"`   // Attack edge
	DT  float64 `json:"dt"`            // Elapsed seconds
}

// ClipInput is the part of a loaded clip the simulation depends on
type ClipInput struct {
	Name     string  `json:"n"`
	Duration float64 `json:"d"`
}

// ModelLoad records a model becoming active for one character
// right before frame F is simulated
type ModelLoad struct {
	F      int         `json:"f"`
	Entity uint32      `json:"e"`
	Model  string      `json:"model"`
	Clips  []ClipInput `json:"clips"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Loads     []ModelLoad  `json:"loads,omitempty"` // ordered by F
}

// Duration returns the total recorded time in seconds
func (d *ReplayData) Duration() float64 {
	total := 0.0
	for _, f := range d.Frames {
		total += f.DT
	}
	return total
}
