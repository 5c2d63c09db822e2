package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/semiguerra/lwip-pong/network"
	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

var (
	hudFace  = basicfont.Face7x13
	hudGreen = color.RGBA{G: 255, A: 255}
)

// scaleX and scaleY convert field units to window pixels.
func scaleX(x float64) float32 {
	return float32(x / netconfig.FieldWidth * ScreenWidth)
}

func scaleY(y float64) float32 {
	return float32(y / netconfig.FieldHeight * ScreenHeight)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	gs := g.client.Game()

	drawCenterLine(screen)
	drawPaddles(screen, gs)
	drawScores(screen, gs)

	if gs.ServeTimer > 0 {
		drawServeCountdown(screen, gs.ServeTimer)
	} else {
		p := g.client.Predicted()
		vector.DrawFilledCircle(screen, scaleX(p.X), scaleY(p.Y), ballPixelRadius, color.White, false)
	}

	g.drawStatusLine(screen)
}

func drawPaddles(screen *ebiten.Image, gs network.GameState) {
	p1x := scaleX(netconfig.PaddleOffsetX)
	p2x := scaleX(netconfig.FieldWidth - netconfig.PaddleOffsetX - netconfig.PaddleWidth)
	vector.DrawFilledRect(screen, p1x, scaleY(float64(gs.P1Y)),
		paddlePixelWidth, paddlePixelHeight, color.White, false)
	vector.DrawFilledRect(screen, p2x, scaleY(float64(gs.P2Y)),
		paddlePixelWidth, paddlePixelHeight, color.White, false)
}

func drawCenterLine(screen *ebiten.Image) {
	for y := 0; y < ScreenHeight; y += 30 {
		vector.DrawFilledRect(screen, ScreenWidth/2-2, float32(y), 4, 20, color.White, false)
	}
}

func drawScores(screen *ebiten.Image, gs network.GameState) {
	text.Draw(screen, strconv.Itoa(gs.Score1), hudFace, ScreenWidth/4, 40, color.White)
	text.Draw(screen, strconv.Itoa(gs.Score2), hudFace, 3*ScreenWidth/4, 40, color.White)
}

func drawServeCountdown(screen *ebiten.Image, timer int) {
	// 30-tick "seconds", rounded up.
	seconds := (timer + 29) / 30
	text.Draw(screen, strconv.Itoa(seconds), hudFace,
		ScreenWidth/2-10, ScreenHeight/2-20, color.White)
}

func (g *Game) drawStatusLine(screen *ebiten.Image) {
	msg := fmt.Sprintf("Last input: %s", g.lastInput)
	if g.client.State() == network.StateDisconnected {
		msg = "connection lost"
	}
	text.Draw(screen, msg, hudFace, 10, ScreenHeight-12, hudGreen)
}
