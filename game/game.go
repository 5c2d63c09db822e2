// Package game is the thin rendering and input layer over the network
// client: it scales the logical field to the window, polls the keyboard, and
// draws the dead-reckoned ball between authoritative updates.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/semiguerra/lwip-pong/network"
	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

// Window geometry, in pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	paddlePixelWidth  = 20
	paddlePixelHeight = 100
	ballPixelRadius   = 15
)

// Game runs the client frame loop. Every update performs one prediction
// advance, one input send, and one non-blocking receive, strictly in that
// order; the network client is only ever touched from this goroutine.
type Game struct {
	client    *network.Client
	lastInput netconfig.Command
}

func New(client *network.Client) *Game {
	return &Game{client: client}
}

func (g *Game) Update() error {
	now := time.Now()
	g.client.Predicted().Advance(now)

	cmd := g.pollKeys()
	g.client.SendInput(cmd) // sent every frame, idle included
	g.lastInput = cmd

	g.client.Poll(now)
	return nil
}

// pollKeys maps held keys to a movement command: W/S for player 1, the
// arrow keys for player 2.
func (g *Game) pollKeys() netconfig.Command {
	up, down := ebiten.KeyW, ebiten.KeyS
	if g.client.Player() == netconfig.Player2 {
		up, down = ebiten.KeyArrowUp, ebiten.KeyArrowDown
	}
	switch {
	case ebiten.IsKeyPressed(up):
		return netconfig.CommandUp
	case ebiten.IsKeyPressed(down):
		return netconfig.CommandDown
	}
	return netconfig.CommandIdle
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
