package system

import (
	"fmt"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/menuengine/internal/domain/input"
)

// KeyState is the slice of platform input the menu reads each tick
type KeyState interface {
	// PressDuration returns how many ticks key has been held, 0 if released
	PressDuration(key ebiten.Key) int
	// Gamepads lists the connected gamepads that have a standard layout
	Gamepads() []ebiten.GamepadID
	// ButtonPressDuration is PressDuration for a gamepad button
	ButtonPressDuration(id ebiten.GamepadID, button ebiten.StandardGamepadButton) int
	// Closing reports whether the window close button was pressed
	Closing() bool
	// Focused reports whether the window has input focus
	Focused() bool
}

// EbitenKeys reads KeyState from ebiten. The window must be created with
// ebiten.SetWindowClosingHandled(true) for Closing to report anything.
type EbitenKeys struct{}

func (EbitenKeys) PressDuration(key ebiten.Key) int { return inpututil.KeyPressDuration(key) }
func (EbitenKeys) Closing() bool                    { return ebiten.IsWindowBeingClosed() }
func (EbitenKeys) Focused() bool                    { return ebiten.IsFocused() }

func (EbitenKeys) Gamepads() []ebiten.GamepadID {
	var ids []ebiten.GamepadID
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (EbitenKeys) ButtonPressDuration(id ebiten.GamepadID, button ebiten.StandardGamepadButton) int {
	return inpututil.StandardGamepadButtonPressDuration(id, button)
}

// NewKeymap resolves key names (as printed by ebiten.Key.String, e.g.
// "ArrowDown", "Enter", "F1") into a keymap.
func NewKeymap(bindings map[input.Action][]string) (input.Keymap[ebiten.Key], error) {
	km := make(input.Keymap[ebiten.Key])
	for action, names := range bindings {
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("failed to bind %s to %q: %w", action, name, err)
			}
			km.Bind(key, action)
		}
	}
	return km, nil
}

var buttonNames = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
}

// NewButtonmap resolves standard gamepad button names ("LeftBottom" is
// D-pad down, "RightBottom" is A / Cross) into a button map.
func NewButtonmap(bindings map[input.Action][]string) (input.Keymap[ebiten.StandardGamepadButton], error) {
	bm := make(input.Keymap[ebiten.StandardGamepadButton])
	for action, names := range bindings {
		for _, name := range names {
			button, ok := buttonNames[name]
			if !ok {
				return nil, fmt.Errorf("failed to bind %s to %q: unknown gamepad button", action, name)
			}
			bm.Bind(button, action)
		}
	}
	return bm, nil
}

// RepeatConfig is key repeat expressed in ticks. A zero Delay disables
// repeat so each press fires once.
type RepeatConfig struct {
	Delay    int
	Interval int
}

// RepeatFromMillis converts millisecond repeat settings at the given tick rate
func RepeatFromMillis(delayMs, intervalMs, tps int) RepeatConfig {
	return RepeatConfig{
		Delay:    msToTicks(delayMs, tps),
		Interval: msToTicks(intervalMs, tps),
	}
}

func msToTicks(ms, tps int) int {
	if ms <= 0 || tps <= 0 {
		return 0
	}
	t := int(math.Round(float64(ms) * float64(tps) / 1000))
	if t < 1 {
		return 1
	}
	return t
}

type padButton struct {
	id     ebiten.GamepadID
	button ebiten.StandardGamepadButton
}

// InputSystem turns key, gamepad and window state into logical input events
type InputSystem struct {
	keys    KeyState
	keymap  input.Keymap[ebiten.Key]
	order   []ebiten.Key
	buttons input.Keymap[ebiten.StandardGamepadButton]
	border  []ebiten.StandardGamepadButton
	repeat  RepeatConfig
	focused bool
	closing bool

	latchedKeys    map[ebiten.Key]bool
	latchedButtons map[padButton]bool
}

// NewInputSystem creates an input system polling keys through keymap and
// gamepad buttons through buttons, which may be nil.
func NewInputSystem(keys KeyState, keymap input.Keymap[ebiten.Key], buttons input.Keymap[ebiten.StandardGamepadButton], repeat RepeatConfig) *InputSystem {
	order := keymap.Keys()
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	border := buttons.Keys()
	sort.Slice(border, func(i, j int) bool { return border[i] < border[j] })

	return &InputSystem{
		keys:           keys,
		keymap:         keymap,
		order:          order,
		buttons:        buttons,
		border:         border,
		repeat:         repeat,
		focused:        true,
		latchedKeys:    make(map[ebiten.Key]bool),
		latchedButtons: make(map[padButton]bool),
	}
}

// Latch implements input.Latcher
func (s *InputSystem) Latch() {
	for _, key := range s.order {
		if s.keys.PressDuration(key) > 0 {
			s.latchedKeys[key] = true
		}
	}
	for _, id := range s.keys.Gamepads() {
		for _, button := range s.border {
			if s.keys.ButtonPressDuration(id, button) > 0 {
				s.latchedButtons[padButton{id, button}] = true
			}
		}
	}
}

// Poll implements input.Source. Keys come first in key order, then gamepad
// buttons by gamepad and button.
func (s *InputSystem) Poll() []input.Event {
	var events []input.Event

	if closing := s.keys.Closing(); closing && !s.closing {
		events = append(events, input.Event{Kind: input.EventQuit})
		s.closing = true
	}

	if focused := s.keys.Focused(); focused != s.focused {
		kind := input.EventFocusGained
		if !focused {
			kind = input.EventFocusLost
		}
		events = append(events, input.Event{Kind: kind})
		s.focused = focused
	}

	for _, key := range s.order {
		d := s.keys.PressDuration(key)
		if s.latchedKeys[key] {
			if d == 0 {
				delete(s.latchedKeys, key)
			}
			continue
		}
		if repeatFires(d, s.repeat) {
			events = appendKeyDowns(events, s.keymap.Resolve(key))
		}
	}

	if len(s.border) == 0 {
		return events
	}
	ids := s.keys.Gamepads()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for _, button := range s.border {
			d := s.keys.ButtonPressDuration(id, button)
			pb := padButton{id, button}
			if s.latchedButtons[pb] {
				if d == 0 {
					delete(s.latchedButtons, pb)
				}
				continue
			}
			if repeatFires(d, s.repeat) {
				events = appendKeyDowns(events, s.buttons.Resolve(button))
			}
		}
	}

	return events
}

func appendKeyDowns(events []input.Event, actions []input.Action) []input.Event {
	for _, action := range actions {
		events = append(events, input.KeyDown(action))
	}
	return events
}

// repeatFires reports whether a key held for d ticks produces a key-down
// this tick: on the press itself, once more after the delay, then every
// interval.
func repeatFires(d int, r RepeatConfig) bool {
	if d <= 0 {
		return false
	}
	if d == 1 {
		return true
	}
	if r.Delay <= 0 {
		return false
	}
	n := d - 1 - r.Delay
	if n < 0 {
		return false
	}
	if r.Interval <= 0 {
		return n == 0
	}
	return n%r.Interval == 0
}
