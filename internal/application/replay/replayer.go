package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/menuengine/internal/domain/input"
)

// Replayer plays recorded frames back as an input source
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads and validates replay data from a file
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
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay: %w", err)
	}

	return &data, nil
}

// Poll implements input.Source. It returns the next frame's events, and
// nothing once every frame has been played.
func (r *Replayer) Poll() []input.Event {
	if r.Finished() {
		return nil
	}
	fe := r.data.Frames[r.frame]
	r.frame++

	// Validated on load
	events, _ := decodeEvents(fe.E)
	return events
}

// Finished reports whether every frame has been played
func (r *Replayer) Finished() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
