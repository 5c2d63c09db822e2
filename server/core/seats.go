package core

import (
	"errors"
	"net"
	"sync"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

var (
	// ErrSeatTaken is returned when a handshake names an already-claimed seat.
	ErrSeatTaken = errors.New("seat already claimed")

	// ErrBadSeat is returned when a handshake names no valid seat.
	ErrBadSeat = errors.New("no such seat")
)

// Seat is one of the two fixed player slots, holding the claiming peer's
// connection and a one-deep command mailbox the match loop polls each tick.
type Seat struct {
	Player netconfig.PlayerID
	conn   net.Conn
	cmdCh  chan netconfig.Command
}

// offer replaces any pending command with the newest one. The match loop
// only ever wants the latest intent, so stale commands are dropped.
func (s *Seat) offer(cmd netconfig.Command) {
	select {
	case <-s.cmdCh:
	default:
	}
	s.cmdCh <- cmd
}

// poll returns the pending command, non-blocking.
func (s *Seat) poll() (netconfig.Command, bool) {
	select {
	case cmd := <-s.cmdCh:
		return cmd, true
	default:
		return netconfig.CommandIdle, false
	}
}

// SeatTable tracks the two seats. A seat is claimed exactly once, by the
// first well-formed handshake naming it; later claims for the same seat are
// rejected without affecting the existing occupant.
type SeatTable struct {
	mu     sync.Mutex
	seats  map[netconfig.PlayerID]*Seat
	seated chan struct{} // closed once both seats are claimed
}

func NewSeatTable() *SeatTable {
	return &SeatTable{
		seats:  make(map[netconfig.PlayerID]*Seat),
		seated: make(chan struct{}),
	}
}

// Claim assigns conn to the named seat. It fails with ErrBadSeat or
// ErrSeatTaken; on the second successful claim the AllSeated channel closes.
func (t *SeatTable) Claim(p netconfig.PlayerID, conn net.Conn) (*Seat, error) {
	if !p.Valid() {
		return nil, ErrBadSeat
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, taken := t.seats[p]; taken {
		return nil, ErrSeatTaken
	}
	seat := &Seat{
		Player: p,
		conn:   conn,
		cmdCh:  make(chan netconfig.Command, 1),
	}
	t.seats[p] = seat
	if len(t.seats) == 2 {
		close(t.seated)
	}
	return seat, nil
}

// AllSeated returns a channel that is closed once both seats are claimed.
// No match tick happens before then.
func (t *SeatTable) AllSeated() <-chan struct{} {
	return t.seated
}

// Each calls fn for both claimed seats, player 1 first.
func (t *SeatTable) Each(fn func(*Seat)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range []netconfig.PlayerID{netconfig.Player1, netconfig.Player2} {
		if seat, ok := t.seats[p]; ok {
			fn(seat)
		}
	}
}

// Close closes every claimed connection.
func (t *SeatTable) Close() {
	t.Each(func(s *Seat) {
		_ = s.conn.Close()
	})
}
