package intro

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is the part of a screen's cycle currently shown
type Phase int

const (
	PhaseFadeIn Phase = iota
	PhaseHold
	PhaseFadeOut
	PhaseDark
	PhaseDone
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "FadeIn"
	case PhaseHold:
		return "Hold"
	case PhaseFadeOut:
		return "FadeOut"
	case PhaseDark:
		return "Dark"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Sequencer advances a Plan by frame time instead of sleeping, so the
// caller keeps control of the frame loop and can end the sequence early.
type Sequencer struct {
	plan    Plan
	index   int
	phase   Phase
	elapsed float64
	tween   *gween.Tween
	alpha   uint8
}

// NewSequencer starts at the fade-in of the first screen
func NewSequencer(plan Plan) *Sequencer {
	s := &Sequencer{plan: plan}
	s.enter(PhaseFadeIn)
	return s
}

// Plan returns the timing the sequencer follows
func (s *Sequencer) Plan() Plan {
	return s.plan
}

// Index returns the screen being shown
func (s *Sequencer) Index() int {
	return s.index
}

// Phase returns the current phase
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Alpha returns the opacity of the current screen, 0..255
func (s *Sequencer) Alpha() uint8 {
	return s.alpha
}

// Done reports whether every screen has been shown
func (s *Sequencer) Done() bool {
	return s.phase == PhaseDone
}

// Skip ends the sequence immediately
func (s *Sequencer) Skip() {
	s.enter(PhaseDone)
}

// Update advances the sequence by dt seconds. Time left over at the end of a
// phase carries into the next one.
func (s *Sequencer) Update(dt float64) {
	for dt > 0 && s.phase != PhaseDone {
		dt = s.advance(dt)
	}
}

func (s *Sequencer) advance(dt float64) float64 {
	dur := s.duration(s.phase)
	step := math.Min(dt, dur-s.elapsed)
	if step < 0 {
		step = 0
	}
	s.elapsed += step

	if s.tween != nil && dur > 0 {
		v, _ := s.tween.Update(float32(step))
		s.alpha = quantize(v)
	}

	if s.elapsed >= dur {
		s.enter(s.next())
	}
	return dt - step
}

func (s *Sequencer) next() Phase {
	switch s.phase {
	case PhaseFadeIn:
		return PhaseHold
	case PhaseHold:
		return PhaseFadeOut
	case PhaseFadeOut:
		return PhaseDark
	case PhaseDark:
		if s.index+1 >= s.plan.Count {
			return PhaseDone
		}
		s.index++
		return PhaseFadeIn
	default:
		return PhaseDone
	}
}

func (s *Sequencer) enter(p Phase) {
	s.phase = p
	s.elapsed = 0
	s.tween = nil

	half := float32(s.plan.FadeDuration / 2)
	switch p {
	case PhaseFadeIn:
		s.alpha = 0
		s.tween = gween.New(0, AlphaLevels, half, ease.Linear)
	case PhaseHold:
		s.alpha = AlphaLevels - 1
	case PhaseFadeOut:
		s.alpha = AlphaLevels - 1
		s.tween = gween.New(AlphaLevels-1, 0, half, ease.Linear)
	case PhaseDark, PhaseDone:
		s.alpha = 0
	}
}

func (s *Sequencer) duration(p Phase) float64 {
	switch p {
	case PhaseFadeIn, PhaseFadeOut:
		return s.plan.FadeDuration / 2
	case PhaseHold:
		return s.plan.Hold
	case PhaseDark:
		return s.plan.DarkGap
	default:
		return 0
	}
}

func quantize(v float32) uint8 {
	level := math.Floor(float64(v))
	if level < 0 {
		return 0
	}
	if level > AlphaLevels-1 {
		return AlphaLevels - 1
	}
	return uint8(level)
}
