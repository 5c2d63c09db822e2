package core

import (
	"sync/atomic"
	"time"
)

// metricsLogEvery is how many ticks pass between metric log lines (10 s at
// the default tick rate).
const metricsLogEvery = 600

// GameLoop advances the match at a fixed tick rate. All world mutation
// happens on the loop goroutine; input arrives through the seats' one-deep
// mailboxes and is polled, never waited on.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	metrics  TickMetrics
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run drives the loop until Stop. It blocks the calling goroutine.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	Log.Infof("match loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			Log.Info("match loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick runs one simulation step: poll inputs, step the world, broadcast.
func (g *GameLoop) tick() {
	start := time.Now()
	g.server.pollInputs()
	g.server.world.Step()
	g.server.broadcast()

	if n := g.metrics.AddTick(time.Since(start).Nanoseconds()); n%metricsLogEvery == 0 {
		Log.Infof("ticks=%d avg_tick=%.3fms inputs=%d rejected_lines=%d",
			n, g.metrics.AvgTickMs(),
			atomic.LoadInt64(&g.metrics.InputsApplied),
			atomic.LoadInt64(&g.metrics.LinesRejected))
	}
}
