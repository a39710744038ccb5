// menu runs an animated menu with an optional splash screen intro.
//
// Usage:
//
//	menu run      - Show the intro, then the menu
//	menu check    - Validate config and assets without opening a window
//
// Global flags:
//
//	--config <dir>       - Config directory with menu.yaml (default: embedded)
//	--assets <dir>       - Asset directory (default: ./assets)
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu engine - animated menu with intro screens",
	Long: `Menu engine shows a sequence of fading intro screens followed by a
menu with an animated selector.

Examples:
  menu run
  menu run --skip-intro --log-level debug
  menu run --config ./my-config --assets ./my-assets
  menu run --record session.json
  menu check --assets ./assets`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config directory containing menu.yaml (empty = embedded default)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Asset directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "menu",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}
