package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"

	"github.com/younwookim/menuengine/internal/application/game"
	"github.com/younwookim/menuengine/internal/application/render"
	"github.com/younwookim/menuengine/internal/application/replay"
	"github.com/younwookim/menuengine/internal/application/scene"
	introscene "github.com/younwookim/menuengine/internal/application/scene/intro"
	"github.com/younwookim/menuengine/internal/application/scene/menu"
	"github.com/younwookim/menuengine/internal/application/system"
	"github.com/younwookim/menuengine/internal/domain/input"
	"github.com/younwookim/menuengine/internal/domain/timing"
	"github.com/younwookim/menuengine/internal/infrastructure/assets"
	"github.com/younwookim/menuengine/internal/infrastructure/config"
	"github.com/younwookim/menuengine/internal/infrastructure/storage"
)

var (
	flagSkipIntro bool
	flagRecord    string
	flagReplay    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the intro, then the menu",
	Long: `Open the menu window. The intro screens play first unless --skip-intro
is given or none are configured.

Controls (default bindings, see keys in menu.yaml):
  Up/W, Down/S  - Move selector    (gamepad: D-pad up/down)
  Enter/Space   - Confirm          (gamepad: A)
  F1            - Toggle statistics (gamepad: Y)
  Esc           - Skip intro / quit (gamepad: B or Start skips, Back quits)`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	runCmd.Flags().BoolVar(&flagSkipIntro, "skip-intro", false, "Go straight to the menu")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Record input events to file (e.g. --record replay.json)")
	runCmd.Flags().StringVar(&flagReplay, "replay", "", "Play back input events from a recording")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	configs, err := configDir()
	if err != nil {
		return err
	}
	s, err := loadSession(configs, os.DirFS(flagAssets))
	if err != nil {
		return err
	}
	cfg := s.settings

	source, recorder, err := inputSource(cfg)
	if err != nil {
		return err
	}

	music, err := loadMusic(s)
	if err != nil {
		return err
	}

	first, err := buildScenes(s, source, music, openStore(cfg.Title, logger), logger)
	if err != nil {
		return err
	}

	d := cfg.Display
	g := game.New(first, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(d.Framerate)
	// A replay has no window events, so let ebiten close the window itself
	ebiten.SetWindowClosingHandled(flagReplay == "")

	logger.Info("starting", "version", cfg.Version, "options", len(s.locations), "intro", first.State())
	runErr := ebiten.RunGame(g)
	g.Close()

	if recorder != nil {
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("failed to save recording", "err", err)
		} else {
			logger.Info("recording saved", "file", flagRecord, "frames", recorder.FrameCount())
		}
	}

	return runErr
}

// inputSource builds the keyboard source, or a replay when --replay is
// set, and wraps it in a recorder when --record is set.
func inputSource(cfg *config.Settings) (input.Source, *replay.Recorder, error) {
	var source input.Source

	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return nil, nil, err
		}
		source = replay.NewReplayer(*data)
	} else {
		bindings, err := cfg.Actions()
		if err != nil {
			return nil, nil, err
		}
		keymap, err := system.NewKeymap(bindings)
		if err != nil {
			return nil, nil, err
		}
		buttonBindings, err := cfg.ButtonActions()
		if err != nil {
			return nil, nil, err
		}
		buttons, err := system.NewButtonmap(buttonBindings)
		if err != nil {
			return nil, nil, err
		}
		repeat := system.RepeatFromMillis(cfg.Timing.KeyRepeat, cfg.Timing.KeyRepeatInterval, cfg.Display.Framerate)
		source = system.NewInputSystem(system.EbitenKeys{}, keymap, buttons, repeat)
	}

	if flagRecord == "" {
		return source, nil, nil
	}
	rec := replay.NewRecorder(cfg.Version)
	return replay.Tee(source, rec), rec, nil
}

func loadMusic(s *session) (scene.Music, error) {
	if s.settings.Menu.Music == "" {
		return nil, nil
	}
	ctx := audio.NewContext(assets.SampleRate)
	player, err := assets.NewMusicLoader(s.assets, ctx).LoadMusic(s.settings.Menu.Music)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// openStore falls back to an in-memory store when the user data directory
// is unavailable.
func openStore(appName string, logger *log.Logger) storage.Store {
	store, err := storage.Open(appName)
	if err != nil {
		logger.Warn("preferences will not persist", "err", err)
		return &storage.MemoryStore{}
	}
	return store
}

func loadFace(s *session) (font.Face, error) {
	size := s.settings.Menu.StatisticsFontSize
	if s.settings.Menu.Font != "" {
		return s.assets.LoadFace(s.settings.Menu.Font, size)
	}
	return assets.DefaultFace(size)
}

// buildScenes loads every image up front and returns the first scene
func buildScenes(s *session, source input.Source, music scene.Music, store storage.Store, logger *log.Logger) (scene.Scene, error) {
	cfg := s.settings
	d := cfg.Display

	frames, err := s.assets.LoadFrames(cfg.Menu.Selector.Frames, cfg.Menu.Selector.Width, cfg.Menu.Selector.Height)
	if err != nil {
		return nil, err
	}

	var background *ebiten.Image
	if cfg.Menu.Background != "" {
		background, err = s.assets.LoadScaledImage(cfg.Menu.Background, d.ScreenWidth, d.ScreenHeight)
		if err != nil {
			return nil, err
		}
	}

	face, err := loadFace(s)
	if err != nil {
		return nil, err
	}

	now := timing.Monotonic()

	m, err := menu.New(menu.Options{
		TimeScale:      cfg.Timing.TimeScale,
		Fill:           cfg.Colors.Fill.RGBA(),
		ScreenW:        d.ScreenWidth,
		ScreenH:        d.ScreenHeight,
		Background:     background,
		SelectorFrames: frames,
		Locations:      s.locations,
		Statistics:     render.NewOverlay(face, cfg.Colors.Statistics.RGBA(), cfg.Version, ebiten.ActualFPS),
		Source:         source,
		Music:          music,
		Store:          store,
		Logger:         logger.WithPrefix("menu"),
		Now:            now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	// confirm posts the chosen option; the handler runs on the next frame
	chosen := input.NewEventKind()
	picked := 0
	m.OnEvent(chosen, func(float64) {
		logger.Info("option selected", "index", picked)
	})
	for i := 0; i <= m.Selection().Options(); i++ {
		if err := m.OnSelect(i, func(float64) {
			picked = i
			m.Post(input.Event{Kind: chosen})
		}); err != nil {
			return nil, err
		}
	}

	if !cfg.HasIntro() || flagSkipIntro {
		return m, nil
	}

	screens, err := s.assets.LoadImages(cfg.Intro.Screens)
	if err != nil {
		return nil, err
	}
	in, err := introscene.New(introscene.Options{
		Screens:      screens,
		RunTime:      cfg.Intro.RunTime,
		FadeDuration: cfg.Intro.FadeDuration,
		DarkGap:      cfg.Intro.DarkGap,
		Skippable:    cfg.Intro.Skippable,
		ScreenW:      d.ScreenWidth,
		ScreenH:      d.ScreenHeight,
		Source:       source,
		Music:        music,
		Logger:       logger.WithPrefix("intro"),
		Now:          now,
		Next:         func() scene.Scene { return m },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create intro: %w", err)
	}
	return in, nil
}
