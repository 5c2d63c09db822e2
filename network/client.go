// Package network implements the client side of the pong wire protocol: the
// TCP connection and handshake, per-frame input sends, non-blocking state
// receipt, and the dead-reckoning ball predictor.
package network

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
	"github.com/semiguerra/lwip-pong/shared/protocol"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StatePlaying
)

// GameState mirrors the last authoritative non-ball fields for rendering.
// Paddles, scores, and the serve countdown need no prediction; they are
// forwarded straight off the wire.
type GameState struct {
	P1Y, P2Y       int
	Score1, Score2 int
	ServeTimer     int
}

// Client is one player's connection to the server. The render loop owns it:
// every field is accessed from that single goroutine, strictly in the
// predict → send → receive order, so no locking is needed.
type Client struct {
	player netconfig.PlayerID
	conn   *net.TCPConn
	state  ClientState

	lb      protocol.LineBuffer
	readBuf []byte

	game      GameState
	predicted PredictedBall
}

// Dial connects to the server, claims the requested seat, and blocks until
// the seat confirmation arrives. Confirmation is only sent once both players
// are present, so this can wait on the opponent.
func Dial(addr string, player netconfig.PlayerID) (*Client, error) {
	if !player.Valid() {
		return nil, fmt.Errorf("invalid seat %d", int(player))
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("dial %s: not a TCP connection", addr)
	}
	// Input lines are tiny and latency-sensitive; don't let Nagle batch them.
	_ = tcp.SetNoDelay(true)

	c := &Client{
		player:  player,
		conn:    tcp,
		state:   StateConnecting,
		readBuf: make([]byte, 256),
	}

	if _, err := tcp.Write([]byte(protocol.EncodeHello(player))); err != nil {
		_ = tcp.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if err := c.awaitWelcome(); err != nil {
		_ = tcp.Close()
		return nil, err
	}
	c.state = StatePlaying
	return c, nil
}

// awaitWelcome blocks for the WELCOME line and verifies it names our seat.
func (c *Client) awaitWelcome() error {
	for {
		n, err := c.conn.Read(c.readBuf)
		if err != nil {
			return fmt.Errorf("handshake: %w", err)
		}
		c.lb.Feed(c.readBuf[:n])
		line, ok := c.lb.Next()
		if !ok {
			continue
		}
		seat, err := protocol.ParseWelcome(line)
		if err != nil {
			return fmt.Errorf("handshake: unexpected line %q", line)
		}
		if seat != c.player {
			return fmt.Errorf("handshake: server confirmed %v, requested %v", seat, c.player)
		}
		return nil
	}
}

// Player returns the seat this client claimed.
func (c *Client) Player() netconfig.PlayerID {
	return c.player
}

// State returns the connection state.
func (c *Client) State() ClientState {
	return c.state
}

// SendInput sends one input line. Call once per frame, including when idle.
// Write errors are swallowed; transport failure shows up on the read side.
func (c *Client) SendInput(cmd netconfig.Command) {
	_, _ = c.conn.Write([]byte(protocol.EncodeInput(cmd)))
}

// Poll performs one non-blocking receive: it drains whatever bytes the
// transport has buffered, applies every complete STATE line (last one wins),
// and silently skips lines that do not parse. No data is a no-op. now is the
// timestamp recorded against any ball state applied.
func (c *Client) Poll(now time.Time) {
	_ = c.conn.SetReadDeadline(time.Now().Add(time.Millisecond))
	n, err := c.conn.Read(c.readBuf)
	if n > 0 {
		c.lb.Feed(c.readBuf[:n])
	}
	for {
		line, ok := c.lb.Next()
		if !ok {
			break
		}
		st, perr := protocol.ParseState(line)
		if perr != nil {
			continue // malformed lines never partially update state
		}
		c.apply(st, now)
	}
	if err != nil && !errors.Is(err, os.ErrDeadlineExceeded) {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			c.state = StateDisconnected
		}
		// Other transport errors are indistinguishable from "no data" at
		// this layer and are dropped.
	}
}

func (c *Client) apply(st protocol.State, now time.Time) {
	c.game = GameState{
		P1Y:        st.P1Y,
		P2Y:        st.P2Y,
		Score1:     st.Score1,
		Score2:     st.Score2,
		ServeTimer: st.ServeTimer,
	}
	c.predicted.ApplyAuthoritative(st.BallX, st.BallY, st.BallDX, st.BallDY, now)
}

// Game returns the last authoritative non-ball snapshot.
func (c *Client) Game() GameState {
	return c.game
}

// Predicted returns the dead-reckoned ball, owned by the render loop.
func (c *Client) Predicted() *PredictedBall {
	return &c.predicted
}

// Close shuts the connection down.
func (c *Client) Close() error {
	c.state = StateDisconnected
	return c.conn.Close()
}
