package config

import "image/color"

// Settings is the root config for menu.yaml
type Settings struct {
	Title   string              `yaml:"title"`
	Version string              `yaml:"version"`
	Display DisplayConfig       `yaml:"display"`
	Timing  TimingConfig        `yaml:"timing"`
	Colors  ColorsConfig        `yaml:"colors"`
	Keys    map[string][]string `yaml:"keys"`    // action name -> key names
	Buttons map[string][]string `yaml:"buttons"` // action name -> standard gamepad buttons
	Menu    MenuConfig          `yaml:"menu"`
	Intro   IntroConfig         `yaml:"intro"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"width"`
	ScreenHeight int `yaml:"height"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"fps"`
}

type TimingConfig struct {
	TimeScale float64 `yaml:"timeScale"`
	// Key repeat in milliseconds. A zero delay disables repeat.
	KeyRepeat         int `yaml:"keyRepeat"`
	KeyRepeatInterval int `yaml:"keyRepeatInterval"`
}

type ColorsConfig struct {
	Fill       Color `yaml:"fill"`
	Statistics Color `yaml:"statistics"`
}

// Color is [r, g, b] or [r, g, b, a]
type Color []uint8

// RGBA converts c, defaulting alpha to opaque
func (c Color) RGBA() color.RGBA {
	switch len(c) {
	case 3:
		return color.RGBA{c[0], c[1], c[2], 255}
	case 4:
		return color.RGBA{c[0], c[1], c[2], c[3]}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

type MenuConfig struct {
	Background string         `yaml:"background"`
	Music      string         `yaml:"music"`
	Selector   SelectorConfig `yaml:"selector"`
	Locations  [][]float64    `yaml:"locations"` // [x, y] per option
	Layout     string         `yaml:"layout"`    // optional .tmx overriding Locations
	Font       string         `yaml:"font"`      // optional .ttf, Go Regular otherwise
	// StatisticsFontSize is the point size of the statistics overlay font
	StatisticsFontSize float64 `yaml:"statisticsFontSize"`
}

type SelectorConfig struct {
	Frames []string `yaml:"frames"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
}

type IntroConfig struct {
	Screens      []string `yaml:"screens"`
	RunTime      float64  `yaml:"runTime"`      // seconds, whole sequence
	FadeDuration float64  `yaml:"fadeDuration"` // seconds, fade in + fade out per screen
	DarkGap      float64  `yaml:"darkGap"`      // seconds between screens
	Skippable    bool     `yaml:"skippable"`
}

// HasIntro reports whether any intro screens are configured
func (s *Settings) HasIntro() bool {
	return len(s.Intro.Screens) > 0
}

// AssetPaths lists every file the menu and intro load, in load order
func (s *Settings) AssetPaths() []string {
	var paths []string
	if s.Menu.Background != "" {
		paths = append(paths, s.Menu.Background)
	}
	if s.Menu.Music != "" {
		paths = append(paths, s.Menu.Music)
	}
	if s.Menu.Font != "" {
		paths = append(paths, s.Menu.Font)
	}
	paths = append(paths, s.Menu.Selector.Frames...)
	paths = append(paths, s.Intro.Screens...)
	return paths
}
