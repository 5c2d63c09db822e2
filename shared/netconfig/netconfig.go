// Package netconfig defines the coordinate contract and gameplay constants
// shared between the client and the server. It must have zero dependencies on
// ebiten or any graphics library so the dedicated server binary stays headless.
//
// Both ends simulate and render against the same logical field. These values
// are part of the wire contract and are not negotiated at runtime; a client
// built with different geometry renders a different game.
package netconfig

import (
	"math"
	"time"
)

// Logical field geometry, in field units.
const (
	FieldWidth    = 80
	FieldHeight   = 24
	PaddleHeight  = 4
	PaddleWidth   = 2
	PaddleOffsetX = 2
)

// Timing.
const (
	TickRate    = 60           // server simulation ticks per second
	ServeTicks  = TickRate * 3 // countdown ticks before a serve is released
	DefaultPort = 12345
)

// StalenessCutoff is the maximum age of an authoritative snapshot the
// client-side predictor will still extrapolate from.
const StalenessCutoff = time.Second

// Serve randomization. Serves leave within ±30° of horizontal, but angles
// whose vertical component is flatter than MinServeSine are redrawn so no
// serve is unreturnably flat.
const (
	InitialBallSpeed = 0.5
	MaxServeAngle    = math.Pi / 6
	MinServeSine     = 0.3
)

// PlayerID identifies one of the two fixed seats.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Valid reports whether p names an actual seat.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "unknown player"
}

// Command is a paddle movement intent. The server applies the most recently
// received command every tick until it is overwritten.
type Command int

const (
	CommandIdle Command = iota
	CommandUp
	CommandDown
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	}
	return "idle"
}
