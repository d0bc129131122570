package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/platformer/internal/application/system"
)

// Replayer handles intent playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the intent for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Intent{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Intent(), true
}

// Run feeds every remaining frame into the physics system, returning the number of ticks run
func (r *Replayer) Run(sys *system.PhysicsSystem) int {
	n := 0
	for {
		in, ok := r.Next()
		if !ok {
			return n
		}
		sys.Tick(in)
		n++
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the recording was made on
func (r *Replayer) Level() string {
	return r.data.Level
}

// CreateTestReplayData creates replay data for testing from an intent script
func CreateTestReplayData(level string, frames int, script func(frame int) system.Intent) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameFromIntent(i, script(i))
	}

	return data
}
