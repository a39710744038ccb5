// Package replay records the logical input events of a session and plays
// them back as an input source.
package replay

import (
	"fmt"

	"github.com/younwookim/menuengine/internal/domain/input"
)

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// EventRecord is one input event in a recording
type EventRecord struct {
	K string `json:"k"`           // Event kind
	A string `json:"a,omitempty"` // Action, key-down only
}

// FrameEvents records the events drained in a single frame
type FrameEvents struct {
	F int           `json:"f"`           // Frame number
	E []EventRecord `json:"e,omitempty"` // Events in drain order
}

// ReplayData contains everything needed to replay a menu session
type ReplayData struct {
	Version    string        `json:"version"`
	AppVersion string        `json:"appVersion"`
	StartTime  string        `json:"startTime"`
	Frames     []FrameEvents `json:"frames"`
}

func encodeEvents(events []input.Event) []EventRecord {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventRecord, len(events))
	for i, ev := range events {
		out[i] = EventRecord{K: ev.Kind.String()}
		if ev.Kind == input.EventKeyDown && ev.Action != input.ActionNone {
			out[i].A = ev.Action.String()
		}
	}
	return out
}

func decodeEvents(records []EventRecord) ([]input.Event, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]input.Event, len(records))
	for i, r := range records {
		kind, err := input.ParseEventKind(r.K)
		if err != nil {
			return nil, err
		}
		out[i] = input.Event{Kind: kind}
		if r.A != "" {
			a, err := input.ParseAction(r.A)
			if err != nil {
				return nil, err
			}
			out[i].Action = a
		}
	}
	return out, nil
}

// Validate checks that every recorded event decodes
func (d *ReplayData) Validate() error {
	for _, f := range d.Frames {
		if _, err := decodeEvents(f.E); err != nil {
			return fmt.Errorf("frame %d: %w", f.F, err)
		}
	}
	return nil
}
