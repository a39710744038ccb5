package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_ActionHandlerReceivesDeltaTime(t *testing.T) {
	d := NewDispatcher()

	var got []float64
	d.OnAction(ActionConfirm, func(dt float64) { got = append(got, dt) })

	fired := d.Dispatch([]Event{KeyDown(ActionConfirm)}, 0.016)

	assert.Equal(t, 1, fired)
	require.Len(t, got, 1)
	assert.Equal(t, 0.016, got[0])
}

func TestDispatcher_ReplacesHandler(t *testing.T) {
	d := NewDispatcher()

	first, second := 0, 0
	d.OnAction(ActionSelectNext, func(float64) { first++ })
	d.OnAction(ActionSelectNext, func(float64) { second++ })

	d.Dispatch([]Event{KeyDown(ActionSelectNext)}, 0)

	assert.Equal(t, 0, first, "replaced handler must not fire")
	assert.Equal(t, 1, second)
}

func TestDispatcher_UnboundItemsAreIgnored(t *testing.T) {
	d := NewDispatcher()

	fired := d.Dispatch([]Event{
		KeyDown(ActionSkip),
		KeyDown(ActionNone),
		{Kind: EventFocusLost},
		{Kind: EventKind(42)},
	}, 0.5)

	assert.Equal(t, 0, fired)
}

func TestDispatcher_EventAndActionTablesBothFire(t *testing.T) {
	d := NewDispatcher()

	kindCalls, actionCalls := 0, 0
	d.OnEvent(EventKeyDown, func(float64) { kindCalls++ })
	d.OnAction(ActionQuit, func(float64) { actionCalls++ })

	fired := d.Dispatch([]Event{KeyDown(ActionQuit)}, 0)

	assert.Equal(t, 2, fired)
	assert.Equal(t, 1, kindCalls)
	assert.Equal(t, 1, actionCalls)
}

func TestDispatcher_ActionOnlyFiresForKeyDown(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	d.OnAction(ActionQuit, func(float64) { calls++ })

	d.Dispatch([]Event{{Kind: EventQuit, Action: ActionQuit}}, 0)

	assert.Equal(t, 0, calls)
}

func TestDispatcher_NilHandlerUnbinds(t *testing.T) {
	d := NewDispatcher()

	d.OnAction(ActionConfirm, func(float64) {})
	require.True(t, d.HasAction(ActionConfirm))

	d.OnAction(ActionConfirm, nil)
	assert.False(t, d.HasAction(ActionConfirm))
}

func TestDispatcher_OneHandlerPerMatchingItem(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	d.OnAction(ActionSelectPrev, func(float64) { calls++ })

	d.Dispatch([]Event{KeyDown(ActionSelectPrev), KeyDown(ActionSelectPrev), KeyDown(ActionSelectNext)}, 0)

	assert.Equal(t, 2, calls)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		expected Action
	}{
		{"toggleStatistics", ActionToggleStatistics},
		{"selectNext", ActionSelectNext},
		{"selectPrev", ActionSelectPrev},
		{"confirm", ActionConfirm},
		{"skip", ActionSkip},
		{"quit", ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAction(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
			assert.Equal(t, tt.name, a.String())
		})
	}

	_, err := ParseAction("none")
	assert.Error(t, err)
	_, err = ParseAction("jump")
	assert.Error(t, err)
}

func TestKeymap_Resolve(t *testing.T) {
	km := Keymap[string]{}
	km.Bind("down", ActionSelectNext)
	km.Bind("esc", ActionSkip)
	km.Bind("esc", ActionQuit)
	km.Bind("esc", ActionQuit)

	assert.Equal(t, []Action{ActionSelectNext}, km.Resolve("down"))
	assert.Equal(t, []Action{ActionSkip, ActionQuit}, km.Resolve("esc"))
	assert.Empty(t, km.Resolve("left"))
	assert.ElementsMatch(t, []string{"down", "esc"}, km.Keys())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "KeyDown", EventKeyDown.String())
	assert.Equal(t, "Quit", EventQuit.String())
	assert.Equal(t, "FocusLost", EventFocusLost.String())
	assert.Equal(t, "FocusGained", EventFocusGained.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}

func TestParseEventKind(t *testing.T) {
	for _, k := range []EventKind{EventKeyDown, EventQuit, EventFocusLost, EventFocusGained} {
		got, err := ParseEventKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseEventKind("Unknown")
	assert.Error(t, err)

	_, err = ParseEventKind("User-1")
	assert.Error(t, err)
}

func TestNewEventKind(t *testing.T) {
	a, b := NewEventKind(), NewEventKind()

	assert.GreaterOrEqual(t, a, EventUser)
	assert.Equal(t, a+1, b)

	got, err := ParseEventKind(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestDispatcher_UserEventKind(t *testing.T) {
	d := NewDispatcher()
	chosen := NewEventKind()

	calls := 0
	d.OnEvent(chosen, func(float64) { calls++ })

	fired := d.Dispatch([]Event{{Kind: chosen}, {Kind: NewEventKind()}}, 0)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, calls)
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func() []Event { return []Event{KeyDown(ActionQuit)} })

	assert.Equal(t, []Event{KeyDown(ActionQuit)}, src.Poll())
}
