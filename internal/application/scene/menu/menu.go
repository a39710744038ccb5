// Package menu provides the menu scene: the selector, the registered
// objects and sprite groups, collisions and the statistics overlay.
package menu

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/menuengine/internal/application/pipeline"
	"github.com/younwookim/menuengine/internal/application/render"
	"github.com/younwookim/menuengine/internal/application/scene"
	"github.com/younwookim/menuengine/internal/application/state"
	"github.com/younwookim/menuengine/internal/domain/collision"
	"github.com/younwookim/menuengine/internal/domain/input"
	"github.com/younwookim/menuengine/internal/domain/registry"
	"github.com/younwookim/menuengine/internal/domain/selector"
	"github.com/younwookim/menuengine/internal/domain/timing"
	"github.com/younwookim/menuengine/internal/infrastructure/storage"
)

const (
	defaultScreenW = 640
	defaultScreenH = 480
)

// Options configures the menu scene
type Options struct {
	TimeScale float64
	Fill      color.Color

	// ScreenW and ScreenH bound the collision space; 640x480 when unset
	ScreenW, ScreenH int

	// Background is drawn at the origin, already scaled to the screen
	Background *ebiten.Image
	// SelectorFrames are the selector animation, already scaled
	SelectorFrames []*ebiten.Image
	// Locations holds one selector position per option
	Locations []selector.Point

	// Statistics is drawn on top when statistics are visible
	Statistics render.Drawable

	Source input.Source
	Music  scene.Music   // optional
	Store  storage.Store // optional
	Logger *log.Logger

	// Now reads a monotonic clock; defaults to timing.Monotonic
	Now func() time.Duration
}

// Menu owns the state of a running menu. Every handler-shaped method takes
// the frame's game delta time so it can be bound directly.
type Menu struct {
	running bool
	ended   bool

	clock      *timing.Clock
	now        func() time.Duration
	source     input.Source
	dispatcher *input.Dispatcher
	dispatched int
	posted     []input.Event

	selection *selector.Selection
	animation *selector.Animation[*ebiten.Image]
	onSelect  map[int]input.Handler

	collisions *collision.Table
	objects    *registry.Registry
	drawables  *render.Layers
	pipeline   *pipeline.Pipeline

	fill              color.Color
	background        *ebiten.Image
	statistics        render.Drawable
	visibleStatistics bool

	music  scene.Music
	store  storage.Store
	logger *log.Logger
}

// New creates the menu scene with the default bindings: toggleStatistics,
// selectNext, selectPrev, confirm and quit, plus window close to stop.
func New(opts Options) (*Menu, error) {
	selection, err := selector.NewSelection(opts.Locations)
	if err != nil {
		return nil, err
	}
	animation, err := selector.NewAnimation(opts.SelectorFrames)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = timing.Monotonic()
	}
	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}
	w, h := opts.ScreenW, opts.ScreenH
	if w <= 0 || h <= 0 {
		w, h = defaultScreenW, defaultScreenH
	}
	scale := opts.TimeScale
	if scale <= 0 {
		scale = 1
	}

	m := &Menu{
		clock:      timing.NewClock(scale),
		now:        now,
		source:     opts.Source,
		dispatcher: input.NewDispatcher(),
		selection:  selection,
		animation:  animation,
		onSelect:   make(map[int]input.Handler),
		collisions: collision.NewTable(w, h),
		objects:    registry.New(),
		drawables:  render.NewLayers(),
		pipeline:   pipeline.New(),
		fill:       fill,
		background: opts.Background,
		statistics: opts.Statistics,
		music:      opts.Music,
		store:      opts.Store,
		logger:     logger,
	}

	m.dispatcher.OnAction(input.ActionToggleStatistics, m.ToggleStatistics)
	m.dispatcher.OnAction(input.ActionSelectNext, m.ChangeSelectionForward)
	m.dispatcher.OnAction(input.ActionSelectPrev, m.ChangeSelectionBack)
	m.dispatcher.OnAction(input.ActionConfirm, m.Confirm)
	m.dispatcher.OnAction(input.ActionQuit, m.Stop)
	m.dispatcher.OnEvent(input.EventQuit, m.Stop)

	m.pipeline.Set(pipeline.PhaseInput, m.dispatchInput)
	m.pipeline.Set(pipeline.PhaseCollision, func(float64) { m.collisions.Check() })
	m.pipeline.Set(pipeline.PhaseUpdate, m.objects.UpdateAll)
	m.pipeline.Set(pipeline.PhaseAnimate, func(float64) { m.animation.Tick() })

	return m, nil
}

func (m *Menu) dispatchInput(dt float64) {
	var events []input.Event
	if m.source != nil {
		events = m.source.Poll()
	}
	events = append(events, m.posted...)
	m.posted = nil
	m.dispatched = m.dispatcher.Dispatch(events, dt)
}

// Post queues ev for the next input phase, after the polled events. Handlers
// bind to application kinds from input.NewEventKind with OnEvent.
func (m *Menu) Post(ev input.Event) {
	m.posted = append(m.posted, ev)
}

// AddObject registers objects updated every frame, in registration order
func (m *Menu) AddObject(objects ...registry.Updater) {
	m.objects.Add(objects...)
}

// AddGroup adds drawables to a layer. Layers are only ever added to.
func (m *Menu) AddGroup(layer int, drawables ...render.Drawable) {
	m.drawables.Add(layer, drawables...)
}

// AddCollision calls cb every frame in which subject overlaps target.
// A subject has one target; registering it again replaces the pair.
func (m *Menu) AddCollision(subject, target collision.Collider, cb collision.Callback) error {
	return m.collisions.Register(subject, target, cb)
}

// OnEvent binds h to an event kind, replacing any previous binding
func (m *Menu) OnEvent(kind input.EventKind, h input.Handler) {
	m.dispatcher.OnEvent(kind, h)
}

// OnAction binds h to an action, replacing any previous binding
func (m *Menu) OnAction(action input.Action, h input.Handler) {
	m.dispatcher.OnAction(action, h)
}

// OnSelect binds h to the confirm action while option index is selected
func (m *Menu) OnSelect(index int, h input.Handler) error {
	if index < 0 || index > m.selection.Options() {
		return fmt.Errorf("option %d out of range [0, %d]", index, m.selection.Options())
	}
	if h == nil {
		delete(m.onSelect, index)
		return nil
	}
	m.onSelect[index] = h
	return nil
}

// Confirm runs the handler of the selected option, if any
func (m *Menu) Confirm(dt float64) {
	if h, ok := m.onSelect[m.selection.Current()]; ok {
		h(dt)
	}
}

// ChangeSelectionForward selects the next option
func (m *Menu) ChangeSelectionForward(_ float64) {
	m.selection.Forward()
}

// ChangeSelectionBack selects the previous option
func (m *Menu) ChangeSelectionBack(_ float64) {
	m.selection.Back()
}

// ToggleStatistics shows or hides the statistics overlay
func (m *Menu) ToggleStatistics(_ float64) {
	m.visibleStatistics = !m.visibleStatistics
}

// Stop ends the loop after the current frame
func (m *Menu) Stop(_ float64) {
	m.running = false
}

// End saves preferences and releases the music. It runs once.
func (m *Menu) End(_ float64) {
	if m.ended {
		return
	}
	m.ended = true

	if m.store != nil {
		prefs := storage.Preferences{
			ShowStatistics: m.visibleStatistics,
			LastSelection:  m.selection.Current(),
		}
		if err := m.store.Save(prefs); err != nil {
			m.logger.Warn("failed to save preferences", "err", err)
		}
	}
	if m.music != nil {
		if err := m.music.Close(); err != nil {
			m.logger.Warn("failed to close music", "err", err)
		}
	}
}

// Running reports whether the loop is running
func (m *Menu) Running() bool {
	return m.running
}

// Selection returns the selector state
func (m *Menu) Selection() *selector.Selection {
	return m.selection
}

// SelectorFrame returns the selector image drawn this frame
func (m *Menu) SelectorFrame() *ebiten.Image {
	return m.animation.Current()
}

// StatisticsVisible reports whether the overlay is shown
func (m *Menu) StatisticsVisible() bool {
	return m.visibleStatistics
}

// Clock returns the frame timing
func (m *Menu) Clock() *timing.Clock {
	return m.clock
}

// Dispatched returns how many handlers the last input phase fired
func (m *Menu) Dispatched() int {
	return m.dispatched
}

// Update runs one tick: input, collisions, objects, selector animation.
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if !m.running {
		return nil, ebiten.Termination
	}

	dt := m.clock.Tick(m.now())
	m.pipeline.Run(dt)

	if !m.running {
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders background, selector, sprite groups and statistics, in
// that order, over the fill color.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(m.fill)

	if m.background != nil {
		screen.DrawImage(m.background, nil)
	}

	if frame := m.animation.Current(); frame != nil {
		loc := m.selection.Location()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(loc.X, loc.Y)
		screen.DrawImage(frame, op)
	}

	m.drawables.Draw(screen)

	if m.visibleStatistics && m.statistics != nil {
		m.statistics.Draw(screen)
	}
}

// OnEnter restores preferences, makes sure the music plays and starts the
// clock. Keys still held from the previous scene are latched so they do not
// repeat into the menu.
func (m *Menu) OnEnter() {
	if l, ok := m.source.(input.Latcher); ok {
		l.Latch()
	}
	m.restorePreferences()

	if m.music != nil && !m.music.IsPlaying() {
		m.music.Play()
	}

	m.running = true
	m.clock.Reset(m.now())
}

func (m *Menu) restorePreferences() {
	if m.store == nil {
		return
	}
	prefs, ok, err := m.store.Load()
	if err != nil {
		m.logger.Warn("failed to load preferences", "err", err)
		return
	}
	if !ok {
		return
	}
	m.visibleStatistics = prefs.ShowStatistics
	if !m.selection.Set(prefs.LastSelection) {
		m.logger.Debug("stored selection out of range", "index", prefs.LastSelection)
	}
}

// OnExit releases resources
func (m *Menu) OnExit() {
	m.End(0)
}

// State implements scene.Scene
func (m *Menu) State() state.EngineState {
	if m.running {
		return state.StateMenu
	}
	return state.StateStopped
}
