package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/menuengine/internal/domain/input"
)

// SettingsFile is the name of the settings file inside a config directory
const SettingsFile = "menu.yaml"

// ErrInvalidSettings is returned when menu.yaml fails validation
var ErrInvalidSettings = errors.New("invalid settings")

// Loader loads menu configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads menu.yaml over DefaultSettings and validates the result
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	cfg, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}

	return cfg, nil
}

// ParseSettings decodes YAML over DefaultSettings and validates the result
func ParseSettings(data []byte) (*Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the engine cannot run without
func (s *Settings) Validate() error {
	d := s.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidSettings, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: display scale %d", ErrInvalidSettings, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidSettings, d.Framerate)
	}
	if s.Timing.TimeScale <= 0 {
		return fmt.Errorf("%w: timeScale %v", ErrInvalidSettings, s.Timing.TimeScale)
	}
	if s.Timing.KeyRepeat < 0 || s.Timing.KeyRepeatInterval < 0 {
		return fmt.Errorf("%w: negative key repeat", ErrInvalidSettings)
	}

	for name, c := range map[string]Color{"fill": s.Colors.Fill, "statistics": s.Colors.Statistics} {
		if len(c) != 3 && len(c) != 4 {
			return fmt.Errorf("%w: color %s needs 3 or 4 components, got %d", ErrInvalidSettings, name, len(c))
		}
	}

	for table, bindings := range map[string]map[string][]string{"keys": s.Keys, "buttons": s.Buttons} {
		for name := range bindings {
			if _, err := input.ParseAction(name); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, table, err)
			}
		}
	}

	sel := s.Menu.Selector
	if len(sel.Frames) == 0 {
		return fmt.Errorf("%w: menu.selector.frames is empty", ErrInvalidSettings)
	}
	if sel.Width <= 0 || sel.Height <= 0 {
		return fmt.Errorf("%w: selector size %dx%d", ErrInvalidSettings, sel.Width, sel.Height)
	}
	if s.Menu.Layout == "" && len(s.Menu.Locations) == 0 {
		return fmt.Errorf("%w: menu needs locations or a layout", ErrInvalidSettings)
	}
	for i, loc := range s.Menu.Locations {
		if len(loc) != 2 {
			return fmt.Errorf("%w: menu.locations[%d] needs [x, y]", ErrInvalidSettings, i)
		}
	}

	if s.HasIntro() {
		in := s.Intro
		for name, v := range map[string]float64{"runTime": in.RunTime, "fadeDuration": in.FadeDuration, "darkGap": in.DarkGap} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: intro.%s %v", ErrInvalidSettings, name, v)
			}
		}
		if s.Intro.FadeDuration < 0 || s.Intro.DarkGap < 0 {
			return fmt.Errorf("%w: negative intro durations", ErrInvalidSettings)
		}
	}

	return nil
}

// Actions resolves the key table into action -> key names
func (s *Settings) Actions() (map[input.Action][]string, error) {
	return resolveActions(s.Keys)
}

// ButtonActions resolves the gamepad table into action -> button names
func (s *Settings) ButtonActions() (map[input.Action][]string, error) {
	return resolveActions(s.Buttons)
}

func resolveActions(table map[string][]string) (map[input.Action][]string, error) {
	out := make(map[input.Action][]string, len(table))
	for name, names := range table {
		a, err := input.ParseAction(name)
		if err != nil {
			return nil, err
		}
		out[a] = names
	}
	return out, nil
}
