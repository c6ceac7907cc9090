package arkanoid

// Snapshot is a flat copy of a session for determinism checks and for
// front-ends that ship state elsewhere. Block IDs are left out so two
// sessions built the same way compare equal.
type Snapshot struct {
	Steps uint64 `json:"steps"`

	BallX      int  `json:"ball_x"`
	BallY      int  `json:"ball_y"`
	BallStepX  int  `json:"ball_step_x"`
	BallStepY  int  `json:"ball_step_y"`
	MovingLeft bool `json:"moving_left"`
	MovingUp   bool `json:"moving_up"`
	InPlay     bool `json:"in_play"`

	PaddleX int `json:"paddle_x"`

	Health int    `json:"health"`
	Score  int    `json:"score"`
	Info   string `json:"info"`
	Won    bool   `json:"won"`

	// Blocks holds the grid cell of each live block as col, row pairs,
	// in scan order.
	Blocks []int `json:"blocks"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	b := s.engine.Ball()
	blocks := make([]int, 0, s.blocks.Count()*2)
	for blk := range s.blocks.Blocks().All() {
		blocks = append(blocks, blk.Col, blk.Row)
	}
	return Snapshot{
		Steps:      s.engine.Steps(),
		BallX:      b.X,
		BallY:      b.Y,
		BallStepX:  b.StepX,
		BallStepY:  b.StepY,
		MovingLeft: b.MovingLeft,
		MovingUp:   b.MovingUp,
		InPlay:     b.InPlay,
		PaddleX:    s.paddle.X,
		Health:     s.hud.Health(),
		Score:      s.hud.Score(),
		Info:       s.hud.Info(),
		Won:        s.engine.Won(),
		Blocks:     blocks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Steps
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mix(snap.BallX)
	mix(snap.BallY)
	mix(snap.BallStepX)
	mix(snap.BallStepY)
	mix(boolInt(snap.MovingLeft))
	mix(boolInt(snap.MovingUp))
	mix(boolInt(snap.InPlay))
	mix(snap.PaddleX)
	mix(snap.Health)
	mix(snap.Score)
	mix(boolInt(snap.Won))
	for _, r := range snap.Info {
		mix(int(r))
	}
	for _, v := range snap.Blocks {
		mix(v)
	}
	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
