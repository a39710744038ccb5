// Package pipeline names the per-tick phases of the menu loop and runs them
// in a fixed order.
package pipeline

// Phase is one stage of a tick
type Phase int

// Phases run in declaration order.
const (
	PhaseInput Phase = iota
	PhaseCollision
	PhaseUpdate
	PhaseAnimate
	phaseCount
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "Input"
	case PhaseCollision:
		return "Collision"
	case PhaseUpdate:
		return "Update"
	case PhaseAnimate:
		return "Animate"
	default:
		return "Unknown"
	}
}

// Step is the work of a phase for one tick
type Step func(dt float64)

// Pipeline holds at most one step per phase.
type Pipeline struct {
	steps [phaseCount]Step
}

// New creates a pipeline with no steps
func New() *Pipeline {
	return &Pipeline{}
}

// Set installs step for phase, replacing the previous one. Unknown phases
// are ignored.
func (p *Pipeline) Set(phase Phase, step Step) {
	if phase < 0 || phase >= phaseCount {
		return
	}
	p.steps[phase] = step
}

// Run executes every installed step in phase order
func (p *Pipeline) Run(dt float64) {
	for _, step := range p.steps {
		if step != nil {
			step(dt)
		}
	}
}

// Phases lists all phases in execution order
func Phases() []Phase {
	out := make([]Phase, 0, phaseCount)
	for ph := PhaseInput; ph < phaseCount; ph++ {
		out = append(out, ph)
	}
	return out
}
