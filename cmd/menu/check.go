package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/menuengine/internal/domain/intro"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config and assets",
	Long: `Load menu.yaml, resolve the selector layout and verify that every
image, music and font file exists, without opening a window.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", s.settings.Title, s.settings.Version)
	fmt.Fprintf(out, "  screen:   %dx%d @ %d fps\n", s.settings.Display.ScreenWidth, s.settings.Display.ScreenHeight, s.settings.Display.Framerate)
	fmt.Fprintf(out, "  options:  %d\n", len(s.locations))
	fmt.Fprintf(out, "  assets:   %d files ok\n", len(s.settings.AssetPaths()))

	if !s.settings.HasIntro() {
		fmt.Fprintln(out, "  intro:    none")
		return nil
	}
	plan, err := intro.NewPlan(len(s.settings.Intro.Screens), s.settings.Intro.RunTime,
		s.settings.Intro.FadeDuration, s.settings.Intro.DarkGap)
	if err != nil {
		return err
	}
	if plan.Clamped {
		logger.Warn("intro run time too short, hold time clamped to 0",
			"runTime", plan.RunTime, "needed", plan.Total())
	}
	fmt.Fprintf(out, "  intro:    %d screens, hold %.2fs, total %.2fs\n", plan.Count, plan.Hold, plan.Total())
	return nil
}
