package core

import (
	"fmt"
	"math/rand"
	"net"
	"time"

	"github.com/semiguerra/lwip-pong/shared/protocol"
)

// Server owns the listener, the seat table, the authoritative world, and the
// match loop. Lifecycle: Listen → Serve (blocks) → Stop.
type Server struct {
	addr  string
	ln    net.Listener
	seats *SeatTable
	world *World
	loop  *GameLoop
}

func NewServer(addr string, tickRate int) *Server {
	s := &Server{
		addr:  addr,
		seats: NewSeatTable(),
		world: NewWorld(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// Listen binds the TCP port. Split from Serve so callers can bind ":0" and
// read Addr before any client connects.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.ln = ln
	Log.Infof("listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound listen address. Only valid after Listen.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until both seats are claimed — there is no
// deadline on waiting — then confirms each seat and runs the match loop
// until Stop. Mid-match joins are unsupported: accepting ends for good once
// the table is full.
func (s *Server) Serve() error {
	go s.acceptLoop()
	<-s.seats.AllSeated()
	_ = s.ln.Close()

	s.seats.Each(func(seat *Seat) {
		_, _ = seat.conn.Write([]byte(protocol.EncodeWelcome(seat.Player)))
		go s.readLoop(seat)
	})
	Log.Info("both seats claimed, match starting")

	s.loop.Run()
	return nil
}

// Run is Listen followed by Serve.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Stop halts the match loop and closes the listener and both seats.
func (s *Server) Stop() {
	s.loop.Stop()
	if s.ln != nil {
		_ = s.ln.Close()
	}
	s.seats.Close()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return // listener closed once both seats are filled
		}
		go s.handshake(conn)
	}
}

// handshake reads the first line from a new connection and claims the seat
// it names. Any other message, or a claim on a taken seat, closes the
// connection; existing seats are unaffected.
func (s *Server) handshake(conn net.Conn) {
	var lb protocol.LineBuffer
	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			_ = conn.Close()
			return
		}
		lb.Feed(buf[:n])
		line, ok := lb.Next()
		if !ok {
			continue
		}

		p, err := protocol.ParseHello(line)
		if err != nil {
			Log.Infof("rejecting %s: %v", conn.RemoteAddr(), err)
			_ = conn.Close()
			return
		}
		if _, err := s.seats.Claim(p, conn); err != nil {
			Log.Infof("rejecting %s claiming %s: %v", conn.RemoteAddr(), p, err)
			_ = conn.Close()
			return
		}
		Log.Infof("%s claimed by %s", p, conn.RemoteAddr())
		return
	}
}

// readLoop drains one seat's input lines into its mailbox. Lines that fail
// to parse are counted and skipped. A read error ends the loop silently:
// mid-match disconnects are not surfaced to the match loop (no reconnection,
// no forfeit).
func (s *Server) readLoop(seat *Seat) {
	var lb protocol.LineBuffer
	buf := make([]byte, 256)
	for {
		n, err := seat.conn.Read(buf)
		if n > 0 {
			lb.Feed(buf[:n])
			for {
				line, ok := lb.Next()
				if !ok {
					break
				}
				cmd, perr := protocol.ParseInput(line)
				if perr != nil {
					s.loop.metrics.IncRejected()
					continue
				}
				seat.offer(cmd)
			}
		}
		if err != nil {
			return
		}
	}
}

// pollInputs applies each seat's buffered command, if any. An empty mailbox
// leaves the seat's previous command in effect.
func (s *Server) pollInputs() {
	s.seats.Each(func(seat *Seat) {
		if cmd, ok := seat.poll(); ok {
			s.world.SetCommand(seat.Player, cmd)
			s.loop.metrics.IncInput()
		}
	})
}

// broadcast writes the tick's state line to both seats. Write errors are
// deliberately ignored; a dropped seat keeps its slot and the match plays on.
func (s *Server) broadcast() {
	line := []byte(s.world.Snapshot().Encode())
	s.seats.Each(func(seat *Seat) {
		_, _ = seat.conn.Write(line)
	})
}

// TickRate reports the loop's configured rate.
func (s *Server) TickRate() int {
	return s.loop.tickRate
}
