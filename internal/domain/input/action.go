// Package input defines the logical input vocabulary of the menu and the
// dispatcher that routes it to bound handlers.
//
// Platform key codes never reach this package: they are resolved once at
// startup into Actions through a Keymap, so handlers bind to what the player
// means rather than to a specific key.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Action is a logical input action.
type Action int

const (
	ActionNone Action = iota
	ActionToggleStatistics
	ActionSelectNext
	ActionSelectPrev
	ActionConfirm
	ActionSkip
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionToggleStatistics: "toggleStatistics",
	ActionSelectNext:       "selectNext",
	ActionSelectPrev:       "selectPrev",
	ActionConfirm:          "confirm",
	ActionSkip:             "skip",
	ActionQuit:             "quit",
}

// String returns the config name of the action
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a config name into an Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if a != ActionNone && n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// EventKind classifies an input event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
	EventFocusLost
	EventFocusGained

	// EventUser is the first kind handed out by NewEventKind
	EventUser EventKind = 1000
)

var userKinds atomic.Int32

// NewEventKind reserves a kind for application events. Kinds are handed out
// in call order, so a program that mints them at startup gets the same
// values on every run.
func NewEventKind() EventKind {
	return EventUser + EventKind(userKinds.Add(1)-1)
}

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch {
	case k == EventKeyDown:
		return "KeyDown"
	case k == EventQuit:
		return "Quit"
	case k == EventFocusLost:
		return "FocusLost"
	case k == EventFocusGained:
		return "FocusGained"
	case k >= EventUser:
		return "User" + strconv.Itoa(int(k-EventUser))
	default:
		return "Unknown"
	}
}

// ParseEventKind is the inverse of EventKind.String
func ParseEventKind(name string) (EventKind, error) {
	for k := EventKeyDown; k <= EventFocusGained; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	if n, ok := strings.CutPrefix(name, "User"); ok {
		if i, err := strconv.Atoi(n); err == nil && i >= 0 {
			return EventUser + EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", name)
}

// Event is a single drained input item. Action is only meaningful for
// EventKeyDown and is ActionNone for keys without a binding.
type Event struct {
	Kind   EventKind
	Action Action
}

// KeyDown returns a key-down event for the given action
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// Keymap maps platform key codes or gamepad buttons to logical actions. A key may carry more
// than one action, e.g. Escape can both skip the intro and quit the menu.
type Keymap[K comparable] map[K][]Action

// Bind adds action to key unless it is already bound there
func (m Keymap[K]) Bind(key K, action Action) {
	for _, a := range m[key] {
		if a == action {
			return
		}
	}
	m[key] = append(m[key], action)
}

// Resolve returns the actions bound to key, or nil.
func (m Keymap[K]) Resolve(key K) []Action {
	return m[key]
}

// Keys returns every bound key.
func (m Keymap[K]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
