package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the difficulty menu and play in this terminal.

Controls:
  A/Left, D/Right  - Move the paddle
  Space            - Start, resume or restart
  P/Esc            - Pause
  B                - Back to menu (when not running)
  Ctrl+S           - Screenshot to ~/.arkanoid/screenshots
  Q/Ctrl+C         - Quit

Scores live for as long as the program runs.

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --mute
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Master volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The terminal belongs to the game, so logs only go to a file under --debug.
	var logOut io.Writer = io.Discard
	if flagDebug {
		f, logErr := openLogFile()
		if logErr != nil {
			return logErr
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound arkanoid.Audio = audio.Nop{}
	if !flagMute {
		player := audio.NewPlayer(audio.WithMasterVolume(flagVolume), audio.WithLogger(logger))
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio unavailable", "error", initErr)
		} else {
			defer player.Close()
			sound = player
		}
	}

	deps := tui.Deps{
		Store:     store,
		Audio:     sound,
		Logger:    logger,
		Player:    playerName(),
		SessionID: uuid.NewString(),
	}
	if err := tui.Run(cfg, deps, width, height); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arkanoid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "arkanoid.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
