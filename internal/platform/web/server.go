package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/platform"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Game is the config every connection starts from. The client may pick
	// a difficulty preset with ?difficulty=.
	Game config.ArkanoidConfig

	// OriginPatterns lists extra hosts allowed to open the websocket.
	OriginPatterns []string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Game:    config.DefaultArkanoidConfig(),
	}
}

// Server serves the browser client and one game per websocket.
type Server struct {
	config Config
	store  *storage.Store
	logger *log.Logger
	http   *http.Server
}

// NewServer creates a web server. A nil store disables the leaderboard and a
// nil logger means the default one.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		config: cfg,
		store:  store,
		logger: logger.WithPrefix("arkanoid-web"),
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes: the client at /, the game socket at /ws
// and the leaderboard at /scores.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // The embedded tree is fixed at build time
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /scores", s.serveScores)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	preset, err := config.ParsePreset(q.Get("difficulty"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg := s.config.Game
	config.ApplyPreset(&cfg, preset)

	id := uuid.NewString()
	logger := s.logger.With("session", id)

	cues := newCueQueue(cueQueueSize)
	game, err := platform.NewGame(cfg, cues, logger)
	if err != nil {
		logger.Error("cannot create game", "error", err)
		http.Error(w, "cannot create game", http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.OriginPatterns,
	})
	if err != nil {
		logger.Warn("failed to accept", "error", err)
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	player := q.Get("player")
	logger.Info("session started", "remote", r.RemoteAddr, "difficulty", preset, "player", player)

	ep := &endpoint{
		id:       id,
		conn:     conn,
		game:     game,
		cues:     cues,
		keymap:   game.Session.Input().Keymap(),
		recorder: storage.NewRecorder(s.store, id, player, time.Now()),
		logger:   logger,
	}
	if err := ep.run(r.Context()); err != nil {
		logger.Warn("session failed", "error", err)
	}
	logger.Info("session ended")
}

func (s *Server) serveScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	scores := []storage.ScoreEntry{}
	if s.store != nil {
		top, err := s.store.TopScores(limit)
		if err != nil {
			s.logger.Error("cannot load scores", "error", err)
			http.Error(w, "cannot load scores", http.StatusInternalServerError)
			return
		}
		scores = top
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scores); err != nil {
		s.logger.Debug("cannot write scores", "error", err)
	}
}

// ListenAndServe serves until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Open sockets end with their requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
