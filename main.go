package main

import (
	"flag"
	"log"
	"net"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/network"
	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

func main() {
	defaultAddr := net.JoinHostPort("127.0.0.1", strconv.Itoa(netconfig.DefaultPort))
	addr := flag.String("addr", defaultAddr, "server address (host:port)")
	player := flag.Int("player", 1, "seat to claim (1 or 2)")
	flag.Parse()

	seat := netconfig.PlayerID(*player)
	if !seat.Valid() {
		log.Fatalf("player must be 1 or 2, got %d", *player)
	}

	log.Printf("connecting to %s as %s (waiting for the opponent if needed)", *addr, seat)
	client, err := network.Dial(*addr, seat)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer client.Close()
	log.Printf("seat confirmed, match starting")

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Pong (predicted)")
	ebiten.SetTPS(netconfig.TickRate)

	if err := ebiten.RunGame(game.New(client)); err != nil {
		log.Fatal(err)
	}
}
