package selector

import "errors"

// ErrNoFrames is returned when an animation is built without frames
var ErrNoFrames = errors.New("selector: at least one frame is required")

// Animation loops over the selector sprite frames, one frame per tick.
type Animation[F any] struct {
	frames  []F
	counter int
	current F
}

// NewAnimation creates an animation showing frames[0] first.
func NewAnimation[F any](frames []F) (*Animation[F], error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	fs := make([]F, len(frames))
	copy(fs, frames)
	return &Animation[F]{
		frames:  fs,
		current: fs[0],
	}, nil
}

// Tick shows the frame under the counter and advances the counter,
// wrapping to 0 after the last frame.
func (a *Animation[F]) Tick() {
	a.current = a.frames[a.counter]
	if a.counter >= len(a.frames)-1 {
		a.counter = 0
	} else {
		a.counter++
	}
}

// Current returns the frame shown since the last Tick
func (a *Animation[F]) Current() F {
	return a.current
}

// Counter returns the index of the frame the next Tick will show
func (a *Animation[F]) Counter() int {
	return a.counter
}

// Len returns the number of frames
func (a *Animation[F]) Len() int {
	return len(a.frames)
}
