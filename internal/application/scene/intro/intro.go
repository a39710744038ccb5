// Package intro provides the splash screen scene shown before the menu.
package intro

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/menuengine/internal/application/scene"
	"github.com/younwookim/menuengine/internal/application/state"
	"github.com/younwookim/menuengine/internal/domain/input"
	seq "github.com/younwookim/menuengine/internal/domain/intro"
	"github.com/younwookim/menuengine/internal/domain/timing"
)

var colorDark = color.RGBA{0, 0, 0, 255}

// Options configures the intro scene
type Options struct {
	Screens      []*ebiten.Image
	RunTime      float64
	FadeDuration float64
	DarkGap      float64
	Skippable    bool

	ScreenW int
	ScreenH int

	Source input.Source
	Music  scene.Music // optional
	Logger *log.Logger

	// Now reads a monotonic clock; defaults to timing.Monotonic
	Now func() time.Duration
	// Next builds the scene shown after the last screen
	Next func() scene.Scene
}

// Intro fades the configured screens in and out, one after another.
type Intro struct {
	sequencer  *seq.Sequencer
	screens    []*ebiten.Image
	dispatcher *input.Dispatcher
	source     input.Source
	music      scene.Music
	logger     *log.Logger
	clock      *timing.Clock
	now        func() time.Duration
	next       func() scene.Scene
	screenW    int
	screenH    int
	quit       bool
}

// New creates the intro scene. An empty screen list is rejected with
// seq.ErrInvalidArgument.
func New(opts Options) (*Intro, error) {
	plan, err := seq.NewPlan(len(opts.Screens), opts.RunTime, opts.FadeDuration, opts.DarkGap)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if plan.Clamped {
		logger.Warn("intro run time too short, hold time clamped to 0",
			"runTime", plan.RunTime, "screens", plan.Count, "needed", plan.Total())
	}

	now := opts.Now
	if now == nil {
		now = timing.Monotonic()
	}

	i := &Intro{
		sequencer:  seq.NewSequencer(plan),
		screens:    opts.Screens,
		dispatcher: input.NewDispatcher(),
		source:     opts.Source,
		music:      opts.Music,
		logger:     logger,
		clock:      timing.NewClock(1),
		now:        now,
		next:       opts.Next,
		screenW:    opts.ScreenW,
		screenH:    opts.ScreenH,
	}

	i.dispatcher.OnEvent(input.EventQuit, func(float64) { i.quit = true })
	if opts.Skippable {
		i.dispatcher.OnAction(input.ActionSkip, func(float64) { i.Skip() })
	}

	return i, nil
}

// Skip ends the intro at the next Update
func (i *Intro) Skip() {
	if !i.sequencer.Done() {
		i.logger.Info("intro skipped", "screen", i.sequencer.Index())
	}
	i.sequencer.Skip()
}

// Sequencer exposes the fade state
func (i *Intro) Sequencer() *seq.Sequencer {
	return i.sequencer
}

// Update advances the fades by the wall-clock time since the previous tick.
// The nominal dt is ignored so a slow frame does not stretch the intro.
func (i *Intro) Update(_ float64) (scene.Scene, error) {
	elapsed := i.clock.Tick(i.now())

	if i.source != nil {
		i.dispatcher.Dispatch(i.source.Poll(), elapsed)
	}
	if i.quit {
		return nil, ebiten.Termination
	}

	i.sequencer.Update(elapsed)
	if i.sequencer.Done() && i.next != nil {
		return i.next(), nil
	}
	return nil, nil
}

// Draw renders the current screen, centered, at the current opacity
func (i *Intro) Draw(screen *ebiten.Image) {
	screen.Fill(colorDark)

	switch i.sequencer.Phase() {
	case seq.PhaseFadeIn, seq.PhaseHold, seq.PhaseFadeOut:
	default:
		return
	}

	img := i.screens[i.sequencer.Index()]
	if img == nil {
		return
	}
	b := img.Bounds()
	x, y := seq.Center(i.screenW, i.screenH, b.Dx(), b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(i.sequencer.Alpha()) / 255)
	screen.DrawImage(img, op)
}

// OnEnter starts the music and the intro clock
func (i *Intro) OnEnter() {
	if i.music != nil && !i.music.IsPlaying() {
		i.music.Play()
	}
	i.clock.Reset(i.now())
}

// OnExit releases the music when the engine stops during the intro. On a
// normal transition the track keeps playing into the menu.
func (i *Intro) OnExit() {
	if !i.quit || i.music == nil {
		return
	}
	if err := i.music.Close(); err != nil {
		i.logger.Warn("failed to close music", "err", err)
	}
}

// State implements scene.Scene
func (i *Intro) State() state.EngineState {
	return state.StateIntro
}
