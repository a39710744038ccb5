package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/menuengine/internal/domain/input"
)

// Recorder collects the events drained each frame
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder tagged with the application version
func NewRecorder(appVersion string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    FormatVersion,
			AppVersion: appVersion,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameEvents, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's events
func (r *Recorder) RecordFrame(events []input.Event) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameEvents{F: r.frame, E: encodeEvents(events)})
	r.frame++
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
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

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Recording is an input source that records everything it passes through
type Recording struct {
	src input.Source
	rec *Recorder
}

// Tee wraps src so every Poll is recorded by rec
func Tee(src input.Source, rec *Recorder) *Recording {
	return &Recording{src: src, rec: rec}
}

// Poll implements input.Source
func (r *Recording) Poll() []input.Event {
	events := r.src.Poll()
	r.rec.RecordFrame(events)
	return events
}

// Latch forwards to the wrapped source when it can latch
func (r *Recording) Latch() {
	if l, ok := r.src.(input.Latcher); ok {
		l.Latch()
	}
}

// Recorder returns the underlying recorder
func (r *Recording) Recorder() *Recorder {
	return r.rec
}
