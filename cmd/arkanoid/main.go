// arkanoid is a terminal Arkanoid with SSH and browser front-ends.
//
// Usage:
//
//	arkanoid play            - Play in this terminal
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid web             - Start HTTP server for browser play
//	arkanoid presets         - List difficulty presets
//	arkanoid config          - Print the default config YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--seed <value>       - RNG seed for reproducible gameplay
//	--debug              - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       uint64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a block breaking game for the terminal. It runs locally,
over SSH or in a browser.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Start HTTP server for browser play
  presets  - List difficulty presets
  config   - Print the default config

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid serve --ssh :2222
  arkanoid web --http :8080
  arkanoid config > ~/.arkanoid/configs/arkanoid.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig applies the global flags to the loaded config.
func loadConfig() (config.ArkanoidConfig, error) {
	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger returns a logger writing to w, at debug level under --debug.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
}
