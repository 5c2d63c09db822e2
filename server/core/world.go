package core

import (
	"math"
	"math/rand"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
	"github.com/semiguerra/lwip-pong/shared/protocol"
)

// paddle is one player's authoritative state: vertical position in field
// units plus the last command received for that seat.
type paddle struct {
	y   int
	cmd netconfig.Command
}

// ball is the authoritative ball state. While serveTimer is nonzero the
// position is frozen; only a serve reset ever changes speed or angle.
type ball struct {
	x, y       float64
	dx, dy     float64
	speed      float64
	serveTimer int
}

// World owns the authoritative match state: two paddles, one ball, two
// scores. It is advanced by exactly one goroutine, one tick at a time, and
// is not safe for concurrent use.
type World struct {
	paddles map[netconfig.PlayerID]*paddle
	ball    ball
	score1  int
	score2  int
	rng     *rand.Rand
}

// NewWorld returns a world with both paddles centered and player 1 serving.
func NewWorld(rng *rand.Rand) *World {
	center := netconfig.FieldHeight/2 - netconfig.PaddleHeight/2
	w := &World{
		paddles: map[netconfig.PlayerID]*paddle{
			netconfig.Player1: {y: center},
			netconfig.Player2: {y: center},
		},
		rng: rng,
	}
	w.resetBall(netconfig.Player1)
	return w
}

// SetCommand stores the most recently received command for a seat. It stays
// in effect every tick until overwritten; there is no implicit idle timeout.
func (w *World) SetCommand(p netconfig.PlayerID, c netconfig.Command) {
	if pad, ok := w.paddles[p]; ok {
		pad.cmd = c
	}
}

// Step advances the simulation by one tick: paddle movement, ball
// integration, wall bounce, paddle collision, scoring.
func (w *World) Step() {
	for _, pad := range w.paddles {
		switch pad.cmd {
		case netconfig.CommandUp:
			pad.y--
		case netconfig.CommandDown:
			pad.y++
		}
		clampPaddle(pad)
	}

	b := &w.ball
	if b.serveTimer > 0 {
		b.serveTimer--
	} else {
		b.x += b.dx
		b.y += b.dy
	}

	// Vertical bounce is a plain velocity flip with no positional
	// correction; minor overshoot past the edge is accepted.
	if b.y < 0 || b.y > netconfig.FieldHeight-1 {
		b.dy = -b.dy
	}

	// Paddle collision only applies while the ball travels toward the
	// paddle and has entered its horizontal band; the vertical span is
	// inclusive at both ends. A hit flips dx and nothing else.
	p1 := w.paddles[netconfig.Player1]
	if b.dx < 0 && b.x <= netconfig.PaddleOffsetX+netconfig.PaddleWidth {
		if b.y >= float64(p1.y) && b.y <= float64(p1.y+netconfig.PaddleHeight) {
			b.dx = -b.dx
		}
	}
	p2 := w.paddles[netconfig.Player2]
	if b.dx > 0 && b.x >= netconfig.FieldWidth-netconfig.PaddleOffsetX-netconfig.PaddleWidth {
		if b.y >= float64(p2.y) && b.y <= float64(p2.y+netconfig.PaddleHeight) {
			b.dx = -b.dx
		}
	}

	// Crossing a goal line scores for the opponent; the conceding side's
	// opponent serves next so the ball opens toward the scored-on player.
	if b.x < 0 {
		w.score2++
		w.resetBall(netconfig.Player1)
	} else if b.x > netconfig.FieldWidth {
		w.score1++
		w.resetBall(netconfig.Player2)
	}
}

// Snapshot serializes the current tick into a broadcastable state.
func (w *World) Snapshot() protocol.State {
	return protocol.State{
		P1Y:        w.paddles[netconfig.Player1].y,
		P2Y:        w.paddles[netconfig.Player2].y,
		BallX:      w.ball.x,
		BallY:      w.ball.y,
		BallDX:     w.ball.dx,
		BallDY:     w.ball.dy,
		Score1:     w.score1,
		Score2:     w.score2,
		ServeTimer: w.ball.serveTimer,
	}
}

// resetBall recreates the ball at field center with a randomized serve
// toward the serving player's opponent. Angles too close to horizontal are
// redrawn so every serve has a returnable vertical component.
func (w *World) resetBall(serving netconfig.PlayerID) {
	b := &w.ball
	b.x = netconfig.FieldWidth / 2
	b.y = netconfig.FieldHeight / 2
	b.speed = netconfig.InitialBallSpeed

	var angle float64
	for {
		angle = (w.rng.Float64()*2 - 1) * netconfig.MaxServeAngle
		if math.Abs(math.Sin(angle)) >= netconfig.MinServeSine {
			break
		}
	}

	dir := 1.0
	if serving == netconfig.Player2 {
		dir = -1.0
	}
	b.dx = dir * b.speed * math.Cos(angle)
	b.dy = b.speed * math.Sin(angle)
	b.serveTimer = netconfig.ServeTicks
}

func clampPaddle(p *paddle) {
	if p.y < 0 {
		p.y = 0
	}
	if p.y > netconfig.FieldHeight-netconfig.PaddleHeight {
		p.y = netconfig.FieldHeight - netconfig.PaddleHeight
	}
}
