package config

import "github.com/younwookim/menuengine/internal/domain/intro"

// DefaultSettings returns the values used for keys absent from menu.yaml
func DefaultSettings() *Settings {
	return &Settings{
		Title:   "Menu",
		Version: "0.1.0",
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Timing: TimingConfig{
			TimeScale:         1,
			KeyRepeat:         0,
			KeyRepeatInterval: 50,
		},
		Colors: ColorsConfig{
			Fill:       Color{0, 0, 0},
			Statistics: Color{255, 255, 255},
		},
		Keys: map[string][]string{
			"toggleStatistics": {"F1"},
			"selectNext":       {"ArrowDown", "S"},
			"selectPrev":       {"ArrowUp", "W"},
			"confirm":          {"Enter", "Space"},
			"skip":             {"Escape", "Enter"},
			"quit":             {"Escape"},
		},
		Buttons: map[string][]string{
			"toggleStatistics": {"RightTop"},
			"selectNext":       {"LeftBottom"},
			"selectPrev":       {"LeftTop"},
			"confirm":          {"RightBottom"},
			"skip":             {"RightRight", "CenterRight"},
			"quit":             {"CenterLeft"},
		},
		Menu: MenuConfig{
			StatisticsFontSize: 20,
		},
		Intro: IntroConfig{
			FadeDuration: intro.DefaultFadeDuration,
			DarkGap:      intro.DefaultDarkGap,
			Skippable:    true,
		},
	}
}
