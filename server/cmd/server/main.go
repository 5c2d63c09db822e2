package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/semiguerra/lwip-pong/server/core"
	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

func main() {
	port := flag.Int("port", netconfig.DefaultPort, "TCP port to listen on")
	tickRate := flag.Int("tickrate", netconfig.TickRate, "simulation ticks per second")
	logPath := flag.String("log", "pong-server.log", "log file path (rotated)")
	flag.Parse()

	if err := core.InitLogger(*logPath); err != nil {
		panic(err)
	}
	defer core.SyncLogger()

	server := core.NewServer(fmt.Sprintf(":%d", *port), *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		core.Log.Info("shutting down")
		server.Stop()
		core.SyncLogger()
		os.Exit(0)
	}()

	core.Log.Infof("starting pong server on port %d (tick rate: %d/s)", *port, *tickRate)
	if err := server.Run(); err != nil {
		core.Log.Fatalf("server error: %v", err)
	}
}
