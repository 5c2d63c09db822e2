// Package protocol implements the newline-delimited ASCII wire format spoken
// between client and server. Every message is a single line; receivers must
// reassemble lines from arbitrarily split reads (see LineBuffer) and drop
// anything that does not parse, without touching local state.
package protocol

import (
	"errors"
	"fmt"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

var (
	// ErrBadHandshake is returned for a HELLO or WELCOME line that does not
	// name a valid seat.
	ErrBadHandshake = errors.New("protocol: malformed handshake")

	// ErrBadInput is returned for an input line that is not one of
	// INPUT:UP, INPUT:DOWN, INPUT:IDLE.
	ErrBadInput = errors.New("protocol: malformed input")

	// ErrBadState is returned for a state line that does not match the
	// nine-field schema exactly.
	ErrBadState = errors.New("protocol: malformed state")
)

// EncodeHello formats the client handshake requesting a seat.
func EncodeHello(p netconfig.PlayerID) string {
	return fmt.Sprintf("HELLO:%d\n", int(p))
}

// ParseHello parses a seat request line (without its newline).
func ParseHello(line string) (netconfig.PlayerID, error) {
	switch line {
	case "HELLO:1":
		return netconfig.Player1, nil
	case "HELLO:2":
		return netconfig.Player2, nil
	}
	return 0, ErrBadHandshake
}

// EncodeWelcome formats the server's seat confirmation.
func EncodeWelcome(p netconfig.PlayerID) string {
	return fmt.Sprintf("WELCOME %d\n", int(p))
}

// ParseWelcome parses a seat confirmation line.
func ParseWelcome(line string) (netconfig.PlayerID, error) {
	switch line {
	case "WELCOME 1":
		return netconfig.Player1, nil
	case "WELCOME 2":
		return netconfig.Player2, nil
	}
	return 0, ErrBadHandshake
}

// EncodeInput formats a per-tick movement command.
func EncodeInput(c netconfig.Command) string {
	switch c {
	case netconfig.CommandUp:
		return "INPUT:UP\n"
	case netconfig.CommandDown:
		return "INPUT:DOWN\n"
	}
	return "INPUT:IDLE\n"
}

// ParseInput parses a movement command line. Unknown commands are an error;
// the server keeps the previous command in effect when parsing fails.
func ParseInput(line string) (netconfig.Command, error) {
	switch line {
	case "INPUT:UP":
		return netconfig.CommandUp, nil
	case "INPUT:DOWN":
		return netconfig.CommandDown, nil
	case "INPUT:IDLE":
		return netconfig.CommandIdle, nil
	}
	return netconfig.CommandIdle, ErrBadInput
}

// State is one authoritative simulation snapshot, broadcast every server
// tick. Integer fields are exact on the wire; ball fields are carried as
// decimals with two fractional digits.
type State struct {
	P1Y, P2Y       int
	BallX, BallY   float64
	BallDX, BallDY float64
	Score1, Score2 int
	ServeTimer     int
}

// Encode serializes the snapshot as a newline-terminated STATE line.
func (s State) Encode() string {
	return fmt.Sprintf("STATE:%d,%d,%.2f,%.2f,%.2f,%.2f,%d,%d,%d\n",
		s.P1Y, s.P2Y,
		s.BallX, s.BallY,
		s.BallDX, s.BallDY,
		s.Score1, s.Score2,
		s.ServeTimer)
}

// ParseState parses a STATE line. Only an exact nine-field match succeeds;
// a malformed line must never partially update caller state, so the result
// is only meaningful when the error is nil. Values that are syntactically
// valid but semantically absurd (a negative score, say) are accepted as-is:
// the protocol's trust boundary is purely syntactic.
func ParseState(line string) (State, error) {
	var s State
	n, err := fmt.Sscanf(line, "STATE:%d,%d,%f,%f,%f,%f,%d,%d,%d",
		&s.P1Y, &s.P2Y,
		&s.BallX, &s.BallY,
		&s.BallDX, &s.BallDY,
		&s.Score1, &s.Score2,
		&s.ServeTimer)
	if err != nil || n != 9 {
		return State{}, ErrBadState
	}
	return s, nil
}
