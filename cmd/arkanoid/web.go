package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/platform/web"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagHTTPAddr string
	flagOrigins  []string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the arkanoid web server",
	Long: `Start an HTTP server that serves the game to browsers.

Every browser tab gets its own game over a websocket. The leaderboard is
shared by all players and lasts until the server stops.

Examples:
  arkanoid web                        # Listen on :8080
  arkanoid web --http 127.0.0.1:9000
  arkanoid web --origin example.com   # Allow a cross-origin page to connect`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "origin", nil, "Extra origins allowed to open the websocket")
}

func runWeb(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := web.Config{
		Address:        flagHTTPAddr,
		Game:           game,
		OriginPatterns: flagOrigins,
	}
	server := web.NewServer(cfg, store, newLogger(os.Stderr))

	fmt.Printf("Starting arkanoid web server on %s\n", cfg.Address)
	fmt.Printf("Open: http://localhost:%s/\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// port extracts the port of a listen address for the hint line.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
