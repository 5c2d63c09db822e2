package network

import (
	"time"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

// PredictedBall dead-reckons the ball between authoritative server states.
// Velocity is expressed in field units per server tick; extrapolation scales
// it by elapsed wall time and the nominal tick rate, assuming the server
// holds its rate (that assumption is part of the wire contract).
//
// The value is only ever mutated by a wholesale overwrite from an
// authoritative state or by advancing from its own previous value. There is
// no smoothing: the next authoritative state snaps the position to the
// server's truth.
type PredictedBall struct {
	X, Y   float64
	DX, DY float64

	lastUpdate time.Time
	valid      bool
}

// ApplyAuthoritative overwrites the prediction with the server's ball state
// and re-arms extrapolation from now.
func (p *PredictedBall) ApplyAuthoritative(x, y, dx, dy float64, now time.Time) {
	p.X, p.Y = x, y
	p.DX, p.DY = dx, dy
	p.lastUpdate = now
	p.valid = true
}

// Advance extrapolates the position by the wall time elapsed since the last
// update and re-bases the timestamp so consecutive frames compound smoothly.
// It reports false — and leaves the position untouched — when there is no
// snapshot yet or the last one is older than the staleness cutoff, in which
// case the caller has nothing current to display.
func (p *PredictedBall) Advance(now time.Time) bool {
	if !p.valid {
		return false
	}
	elapsed := now.Sub(p.lastUpdate)
	if elapsed >= netconfig.StalenessCutoff {
		return false
	}
	dt := elapsed.Seconds()
	p.X += p.DX * dt * netconfig.TickRate
	p.Y += p.DY * dt * netconfig.TickRate
	p.lastUpdate = now
	return true
}

// Valid reports whether an authoritative snapshot has ever been applied.
func (p *PredictedBall) Valid() bool {
	return p.valid
}
