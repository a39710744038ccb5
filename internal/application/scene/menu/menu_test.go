package menu

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/menuengine/internal/application/render"
	"github.com/younwookim/menuengine/internal/application/state"
	"github.com/younwookim/menuengine/internal/domain/input"
	"github.com/younwookim/menuengine/internal/domain/registry"
	"github.com/younwookim/menuengine/internal/domain/selector"
	"github.com/younwookim/menuengine/internal/infrastructure/storage"
)

type queue struct {
	events []input.Event
}

func (q *queue) push(events ...input.Event) {
	q.events = append(q.events, events...)
}

func (q *queue) Poll() []input.Event {
	out := q.events
	q.events = nil
	return out
}

type fakeMusic struct {
	playing bool
	plays   int
	closed  int
}

func (m *fakeMusic) Play()           { m.playing = true; m.plays++ }
func (m *fakeMusic) IsPlaying() bool { return m.playing }
func (m *fakeMusic) Close() error    { m.closed++; return nil }

type failingStore struct{}

func (failingStore) Load() (storage.Preferences, bool, error) {
	return storage.Preferences{}, false, errors.New("disk on fire")
}
func (failingStore) Save(storage.Preferences) error { return errors.New("disk on fire") }

type fixture struct {
	menu  *Menu
	input *queue
	music *fakeMusic
	store *storage.MemoryStore
	now   time.Duration
}

// tick moves the clock forward by ms and runs one Update
func (f *fixture) tick(t *testing.T, ms int) error {
	t.Helper()
	f.now += time.Duration(ms) * time.Millisecond
	_, err := f.menu.Update(1.0 / 60)
	return err
}

func testLocations(n int) []selector.Point {
	locs := make([]selector.Point, n)
	for i := range locs {
		locs[i] = selector.Point{X: 250, Y: 260 + 80*float64(i)}
	}
	return locs
}

func newFixture(t *testing.T, locations, frames int, timeScale float64) *fixture {
	t.Helper()
	f := &fixture{
		input: &queue{},
		music: &fakeMusic{},
		store: &storage.MemoryStore{},
	}
	m, err := New(Options{
		TimeScale:      timeScale,
		SelectorFrames: make([]*ebiten.Image, frames),
		Locations:      testLocations(locations),
		Source:         f.input,
		Music:          f.music,
		Store:          f.store,
		Logger:         log.New(io.Discard),
		Now:            func() time.Duration { return f.now },
	})
	require.NoError(t, err)
	f.menu = m
	f.menu.OnEnter()
	return f
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{SelectorFrames: make([]*ebiten.Image, 1)})
	assert.ErrorIs(t, err, selector.ErrNoLocations)

	_, err = New(Options{Locations: testLocations(2)})
	assert.ErrorIs(t, err, selector.ErrNoFrames)
}

func TestMenu_BoundActionFiresOnceWithGameDelta(t *testing.T) {
	f := newFixture(t, 3, 4, 2)

	var calls []float64
	f.menu.OnAction(input.ActionSkip, func(dt float64) { calls = append(calls, dt) })

	f.input.push(input.KeyDown(input.ActionSkip))
	require.NoError(t, f.tick(t, 16))

	require.Len(t, calls, 1)
	assert.InDelta(t, 16*0.001*2, calls[0], 1e-12)
	assert.Equal(t, f.menu.Clock().GameDelta(), calls[0])
	assert.Equal(t, 1, f.menu.Dispatched(), "no other handler fired")
	assert.Equal(t, 0, f.menu.Selection().Current())
	assert.False(t, f.menu.StatisticsVisible())
	assert.True(t, f.menu.Running())
}

func TestMenu_ForwardWraps(t *testing.T) {
	f := newFixture(t, 3, 1, 1)

	for i := 0; i < 5; i++ {
		f.input.push(input.KeyDown(input.ActionSelectNext))
		require.NoError(t, f.tick(t, 16))
	}

	assert.Equal(t, 2, f.menu.Selection().Options())
	assert.Equal(t, 2, f.menu.Selection().Current())
}

func TestMenu_BackWraps(t *testing.T) {
	f := newFixture(t, 3, 1, 1)

	for n := 1; n <= 7; n++ {
		f.menu.ChangeSelectionBack(0)
		want := ((-n)%3 + 3) % 3
		assert.Equal(t, want, f.menu.Selection().Current(), "after %d", n)
	}
}

func TestMenu_SelectorAnimatesEveryTick(t *testing.T) {
	f := newFixture(t, 3, 4, 1)

	var counters []int
	for i := 0; i < 8; i++ {
		if i%3 == 0 {
			f.input.push(input.KeyDown(input.ActionSelectNext))
		}
		require.NoError(t, f.tick(t, 16))
		counters = append(counters, f.menu.animation.Counter())
	}

	assert.Equal(t, []int{1, 2, 3, 0, 1, 2, 3, 0}, counters)
}

func TestMenu_ToggleStatistics(t *testing.T) {
	f := newFixture(t, 2, 1, 1)

	f.input.push(input.KeyDown(input.ActionToggleStatistics))
	require.NoError(t, f.tick(t, 16))
	assert.True(t, f.menu.StatisticsVisible())

	f.input.push(input.KeyDown(input.ActionToggleStatistics))
	require.NoError(t, f.tick(t, 16))
	assert.False(t, f.menu.StatisticsVisible())
}

func TestMenu_ConfirmRunsSelectedOption(t *testing.T) {
	f := newFixture(t, 3, 1, 1)

	var chosen []int
	for i := 0; i < 3; i++ {
		i := i
		require.NoError(t, f.menu.OnSelect(i, func(float64) { chosen = append(chosen, i) }))
	}
	assert.Error(t, f.menu.OnSelect(3, func(float64) {}))

	f.input.push(input.KeyDown(input.ActionSelectNext), input.KeyDown(input.ActionConfirm))
	require.NoError(t, f.tick(t, 16))

	assert.Equal(t, []int{1}, chosen)
}

func TestMenu_ConfirmWithoutHandlerIsNoop(t *testing.T) {
	f := newFixture(t, 2, 1, 1)

	f.input.push(input.KeyDown(input.ActionConfirm))
	assert.NoError(t, f.tick(t, 16))
}

func TestMenu_OrderInputCollisionUpdate(t *testing.T) {
	f := newFixture(t, 2, 1, 1)
	var order []string

	f.menu.OnAction(input.ActionSkip, func(float64) { order = append(order, "input") })

	subject := render.NewSpriteRect(nil, 0, 0, 10, 10)
	target := render.NewSpriteRect(nil, 5, 5, 10, 10)
	require.NoError(t, f.menu.AddCollision(subject, target, func() { order = append(order, "collision") }))

	f.menu.AddObject(
		registry.UpdaterFunc(func(float64) { order = append(order, "object-1") }),
		registry.UpdaterFunc(func(float64) { order = append(order, "object-2") }),
	)

	f.input.push(input.KeyDown(input.ActionSkip))
	require.NoError(t, f.tick(t, 16))

	assert.Equal(t, []string{"input", "collision", "object-1", "object-2"}, order)
}

func TestMenu_ObjectsReceiveGameDelta(t *testing.T) {
	f := newFixture(t, 2, 1, 0.5)
	var got float64
	f.menu.AddObject(registry.UpdaterFunc(func(dt float64) { got = dt }))

	require.NoError(t, f.tick(t, 100))

	assert.InDelta(t, 0.05, got, 1e-12)
	assert.InDelta(t, 100.0, f.menu.Clock().RealDelta(), 1e-9)
}

func TestMenu_CollisionOnlyWhileOverlapping(t *testing.T) {
	f := newFixture(t, 2, 1, 1)

	subject := render.NewSpriteRect(nil, 0, 0, 10, 10)
	target := render.NewSpriteRect(nil, 100, 0, 10, 10)
	hits := 0
	require.NoError(t, f.menu.AddCollision(subject, target, func() { hits++ }))

	// Moves 50px per tick toward the target
	f.menu.AddObject(registry.UpdaterFunc(func(float64) { subject.Move(50, 0) }))

	for i := 0; i < 4; i++ {
		require.NoError(t, f.tick(t, 16))
	}

	// Collisions run before the move: positions checked are 0, 50, 100, 150
	assert.Equal(t, 1, hits)
}

func TestMenu_QuitStops(t *testing.T) {
	tests := []struct {
		name  string
		event input.Event
	}{
		{"quit action", input.KeyDown(input.ActionQuit)},
		{"window close", input.Event{Kind: input.EventQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 2, 1, 1)
			assert.Equal(t, state.StateMenu, f.menu.State())

			f.input.push(tt.event)
			err := f.tick(t, 16)

			assert.ErrorIs(t, err, ebiten.Termination)
			assert.False(t, f.menu.Running())
			assert.Equal(t, state.StateStopped, f.menu.State())
		})
	}
}

func TestMenu_EndSavesPreferencesAndClosesMusic(t *testing.T) {
	f := newFixture(t, 3, 1, 1)
	assert.Equal(t, 1, f.music.plays)

	f.menu.ChangeSelectionForward(0)
	f.menu.ChangeSelectionForward(0)
	f.menu.ToggleStatistics(0)
	f.menu.Stop(0)
	f.menu.OnExit()
	f.menu.End(0)

	assert.Equal(t, 1, f.music.closed, "End runs once")

	prefs, ok, err := f.store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, storage.Preferences{ShowStatistics: true, LastSelection: 2}, prefs)
}

func TestMenu_RestoresPreferences(t *testing.T) {
	store := &storage.MemoryStore{}
	require.NoError(t, store.Save(storage.Preferences{ShowStatistics: true, LastSelection: 1}))

	m, err := New(Options{
		SelectorFrames: make([]*ebiten.Image, 1),
		Locations:      testLocations(3),
		Store:          store,
		Logger:         log.New(io.Discard),
	})
	require.NoError(t, err)
	m.OnEnter()

	assert.True(t, m.StatisticsVisible())
	assert.Equal(t, 1, m.Selection().Current())
}

func TestMenu_IgnoresOutOfRangePreference(t *testing.T) {
	store := &storage.MemoryStore{}
	require.NoError(t, store.Save(storage.Preferences{LastSelection: 9}))

	m, err := New(Options{
		SelectorFrames: make([]*ebiten.Image, 1),
		Locations:      testLocations(3),
		Store:          store,
		Logger:         log.New(io.Discard),
	})
	require.NoError(t, err)
	m.OnEnter()

	assert.Equal(t, 0, m.Selection().Current())
}

func TestMenu_StoreFailuresAreNotFatal(t *testing.T) {
	m, err := New(Options{
		SelectorFrames: make([]*ebiten.Image, 1),
		Locations:      testLocations(2),
		Store:          failingStore{},
		Logger:         log.New(io.Discard),
	})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.OnEnter()
		m.End(0)
	})
}

func TestMenu_MusicAlreadyPlayingFromIntro(t *testing.T) {
	music := &fakeMusic{playing: true}
	m, err := New(Options{
		SelectorFrames: make([]*ebiten.Image, 1),
		Locations:      testLocations(2),
		Music:          music,
		Logger:         log.New(io.Discard),
	})
	require.NoError(t, err)

	m.OnEnter()

	assert.Equal(t, 0, music.plays)
}

func TestMenu_RebindingReplacesDefault(t *testing.T) {
	f := newFixture(t, 3, 1, 1)
	calls := 0
	f.menu.OnAction(input.ActionSelectNext, func(float64) { calls++ })

	f.input.push(input.KeyDown(input.ActionSelectNext))
	require.NoError(t, f.tick(t, 16))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.menu.Selection().Current())
}

type latchingQueue struct {
	queue
	latched int
}

func (q *latchingQueue) Latch() { q.latched++ }

func TestMenu_OnEnterLatchesSource(t *testing.T) {
	src := &latchingQueue{}
	m, err := New(Options{
		SelectorFrames: make([]*ebiten.Image, 1),
		Locations:      testLocations(2),
		Source:         src,
		Logger:         log.New(io.Discard),
	})
	require.NoError(t, err)

	m.OnEnter()

	assert.Equal(t, 1, src.latched)
}

func TestMenu_PostedEventsDispatchNextFrame(t *testing.T) {
	f := newFixture(t, 3, 1, 1)
	chosen := input.NewEventKind()

	var got []int
	f.menu.OnEvent(chosen, func(float64) { got = append(got, f.menu.Selection().Current()) })
	require.NoError(t, f.menu.OnSelect(0, func(float64) { f.menu.Post(input.Event{Kind: chosen}) }))

	f.input.push(input.KeyDown(input.ActionConfirm))
	require.NoError(t, f.tick(t, 16))
	assert.Empty(t, got, "posted during dispatch, handled next frame")

	f.input.push(input.KeyDown(input.ActionSelectNext))
	require.NoError(t, f.tick(t, 16))
	assert.Equal(t, []int{1}, got, "posted events run after the polled ones")

	require.NoError(t, f.tick(t, 16))
	assert.Len(t, got, 1)
}
