package arkanoid

// Event is a payload-free signal published on a session's Bus.
type Event int

const (
	EventPaddleLeft Event = iota + 1
	EventPaddleRight
	EventProcessInput
	EventBallRun
	EventBlockBreak
	EventGameBreak
	EventPaddleBlur
	EventRunGameLoop
)

var eventNames = map[Event]string{
	EventPaddleLeft:   "paddle-left",
	EventPaddleRight:  "paddle-right",
	EventProcessInput: "process-input",
	EventBallRun:      "ball-run",
	EventBlockBreak:   "block-break",
	EventGameBreak:    "game-break",
	EventPaddleBlur:   "paddle-blur",
	EventRunGameLoop:  "run-game-loop",
}

// String returns the wire name of the event.
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Handler reacts to an event. A non-nil error aborts the publish.
type Handler func(Event) error

// Bus delivers events synchronously, in subscription order, on the caller's
// goroutine. It belongs to one session and is not safe for concurrent use.
type Bus struct {
	handlers map[Event][]Handler
	taps     []func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Event][]Handler)}
}

// Subscribe registers h for e.
func (b *Bus) Subscribe(e Event, h Handler) {
	b.handlers[e] = append(b.handlers[e], h)
}

// Observe registers fn to see every event before its handlers run.
func (b *Bus) Observe(fn func(Event)) {
	b.taps = append(b.taps, fn)
}

// Publish delivers e to observers and then to handlers. The first handler
// error stops delivery and is returned.
func (b *Bus) Publish(e Event) error {
	for _, tap := range b.taps {
		tap(e)
	}
	for _, h := range b.handlers[e] {
		if err := h(e); err != nil {
			return err
		}
	}
	return nil
}
