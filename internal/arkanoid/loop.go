package arkanoid

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// MinTickPeriod is the shortest tick period a Loop schedules. A requested
// period of zero ("as fast as possible") is raised to it.
const MinTickPeriod = 4 * time.Millisecond

// CommandKind identifies a Command.
type CommandKind int

const (
	CmdPress CommandKind = iota + 1
	CmdRelease
	CmdRun
	CmdBreak
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdPress:
		return "press"
	case CmdRelease:
		return "release"
	case CmdRun:
		return "run"
	case CmdBreak:
		return "break"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a request from a front-end to a running Loop.
type Command struct {
	Kind CommandKind
	Code core.KeyCode // Press and Release only
}

func PressCmd(code core.KeyCode) Command   { return Command{Kind: CmdPress, Code: code} }
func ReleaseCmd(code core.KeyCode) Command { return Command{Kind: CmdRelease, Code: code} }
func RunCmd() Command                      { return Command{Kind: CmdRun} }
func BreakCmd() Command                    { return Command{Kind: CmdBreak} }
func QuitCmd() Command                     { return Command{Kind: CmdQuit} }

// KeyCommand translates a key transition into the command a front-end
// should send. Directional keys produce press and release commands; every
// other bound action fires on key down only. ok is false when the key is
// unbound or the transition carries no command.
func KeyCommand(km core.Keymap, code core.KeyCode, down bool) (cmd Command, ok bool) {
	a := km.Lookup(code)
	if a.Held() {
		if down {
			return PressCmd(code), true
		}
		return ReleaseCmd(code), true
	}
	if !down {
		return Command{}, false
	}
	switch a {
	case core.ActionRun:
		return RunCmd(), true
	case core.ActionBreak:
		return BreakCmd(), true
	case core.ActionQuit:
		return QuitCmd(), true
	}
	return Command{}, false
}

// Loop schedules ticks for one session and owns its running/stopped state.
//
// Start, Stop, Break, Tick and RequestRun are meant for the goroutine that
// owns the session. Once Run is active, every other goroutine must go through
// Send. State may be read from anywhere.
type Loop struct {
	session *Session
	period  time.Duration
	state   atomic.Int32

	ticker *time.Ticker
	ticks  <-chan time.Time

	commands chan Command
	done     chan struct{}
	logger   *log.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) LoopOption {
	return func(loop *Loop) { loop.logger = l }
}

// NewLoop binds a loop to s. A negative period is rejected; zero selects
// MinTickPeriod.
func NewLoop(s *Session, period time.Duration, opts ...LoopOption) (*Loop, error) {
	if s == nil {
		return nil, core.Configf("NewLoop", "session is nil")
	}
	if period < 0 {
		return nil, core.Configf("NewLoop", "negative tick period %s", period)
	}
	if period == 0 {
		period = MinTickPeriod
	}

	l := &Loop{
		session:  s,
		period:   period,
		commands: make(chan Command, 16),
		done:     make(chan struct{}),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	s.bus.Subscribe(EventGameBreak, func(Event) error {
		if l.State() != StateRunning {
			return nil
		}
		return l.Stop()
	})
	s.bus.Subscribe(EventRunGameLoop, func(Event) error {
		return l.Start()
	})
	return l, nil
}

// State reports the loop state.
func (l *Loop) State() GameState {
	return GameState(l.state.Load())
}

// Period returns the effective tick period.
func (l *Loop) Period() time.Duration { return l.period }

// RestartPending reports whether the next start is a full restart.
func (l *Loop) RestartPending() bool {
	return l.State() == StateStopped && l.session.hud.Health() == 0
}

func (l *Loop) setState(s GameState) {
	prev := GameState(l.state.Swap(int32(s))) //#nosec G115 -- small enum
	if prev != s {
		l.logger.Debug("loop state", "from", prev, "to", s)
	}
}

// Start enters Running. It is a no-op while already running. A zero health
// triggers a full restart and an empty grid is regenerated. The ball and
// paddle are recentered unless the ball is still in play (resume after a
// break).
func (l *Loop) Start() error {
	if l.State() == StateRunning {
		return nil
	}
	s := l.session
	if s.hud.Health() == 0 {
		if err := s.Restart(); err != nil {
			return err
		}
	}
	if s.blocks.Count() == 0 {
		if err := s.blocks.Generate(); err != nil {
			return err
		}
	}
	s.hud.ShowInfo("")
	if !s.engine.ball.InPlay {
		if err := s.Centralize(); err != nil {
			return err
		}
	}

	l.ticker = time.NewTicker(l.period)
	l.ticks = l.ticker.C
	l.setState(StateRunning)
	s.audio.Play(CueInGame, PlayOptions{Volume: 0.4, Loop: true, Solo: true})
	return nil
}

// Stop clears the tick source and enters Stopped. It fails with an
// InvalidStateError when no tick is scheduled.
func (l *Loop) Stop() error {
	if l.ticker == nil {
		return core.InvalidStatef("Loop.Stop", "no tick scheduled (state %s)", l.State())
	}
	l.disarm()
	l.setState(StateStopped)
	l.session.audio.Play(CueAwait, PlayOptions{Volume: 1, Loop: true, Solo: true})
	return nil
}

// Break pauses a running game with a resume hint.
func (l *Loop) Break() error {
	if l.ticker == nil {
		return core.InvalidStatef("Loop.Break", "no tick scheduled (state %s)", l.State())
	}
	l.session.hud.ShowInfo(TextPaused)
	return l.Stop()
}

func (l *Loop) disarm() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	l.ticker = nil
	l.ticks = nil
}

// halt leaves Running quietly when Run returns, so the state never claims a
// tick that is no longer armed.
func (l *Loop) halt() {
	l.disarm()
	if l.State() == StateRunning {
		l.setState(StateStopped)
	}
}

// RequestRun asks the loop to start through the bus, as a start button would.
func (l *Loop) RequestRun() error {
	return l.session.bus.Publish(EventRunGameLoop)
}

// Tick runs one simulation step: input first, then the paddle, then the ball.
func (l *Loop) Tick() (Outcome, error) {
	s := l.session
	if err := s.bus.Publish(EventProcessInput); err != nil {
		return Outcome{}, err
	}
	if err := s.MovePaddle(s.input.Resolve()); err != nil {
		return Outcome{}, err
	}
	if err := s.bus.Publish(EventBallRun); err != nil {
		return Outcome{}, err
	}
	return s.engine.Step()
}

// Send delivers a command to Run. It fails once Run has returned.
func (l *Loop) Send(ctx context.Context, cmd Command) error {
	select {
	case l.commands <- cmd:
		return nil
	case <-l.done:
		return core.InvalidStatef("Loop.Send", "loop has exited, dropped %s", cmd.Kind)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Run drives the session until ctx is cancelled, a Quit command arrives or a
// tick fails. It must be called once. Ticks that fall due while a tick is
// still running are dropped by the ticker.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.halt()

	l.logger.Debug("loop started", "period", l.period)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.commands:
			quit, err := l.handle(cmd)
			if err != nil {
				return fmt.Errorf("%s command: %w", cmd.Kind, err)
			}
			if quit {
				l.logger.Debug("loop quit")
				return nil
			}
		case <-l.ticks:
			if _, err := l.Tick(); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
		}
	}
}

func (l *Loop) handle(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdPress:
		l.session.input.Press(cmd.Code)
	case CmdRelease:
		l.session.input.Release(cmd.Code)
	case CmdRun:
		return false, l.RequestRun()
	case CmdBreak:
		if l.State() != StateRunning {
			l.logger.Debug("break ignored", "state", l.State())
			return false, nil
		}
		return false, l.Break()
	case CmdQuit:
		return true, nil
	default:
		l.logger.Warn("unknown command", "kind", int(cmd.Kind))
	}
	return false, nil
}
