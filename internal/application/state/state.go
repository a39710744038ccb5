package state

// EngineState is the top-level state of the menu engine
type EngineState int

const (
	StateIntro EngineState = iota
	StateMenu
	StateStopped
)

// String returns the string representation of the engine state
func (s EngineState) String() string {
	switch s {
	case StateIntro:
		return "Intro"
	case StateMenu:
		return "Menu"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Running reports whether the frame loop should keep going
func (s EngineState) Running() bool {
	return s == StateIntro || s == StateMenu
}
