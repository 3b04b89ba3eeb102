package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyloft/skywatch/server/core"
	"github.com/skyloft/skywatch/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	interval := flag.Int("interval", 1000, "Base feed interval in milliseconds")
	jitter := flag.Int("jitter", 400, "Max random extra delay per feed tick in milliseconds")
	aircraft := flag.Int("aircraft", 6, "Number of simulated aircraft")
	balloons := flag.Int("balloons", 2, "Number of simulated balloons")
	gliders := flag.Int("gliders", 2, "Number of simulated gliders")
	lat := flag.Float64("lat", 48.3, "Simulation center latitude")
	lon := flag.Float64("lon", 7.8, "Simulation center longitude")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Simulation random seed")
	name := flag.String("name", "Skywatch Feed", "Server display name")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	sim := core.NewSimulation(*seed, *lat, *lon, *aircraft, *balloons, *gliders)
	server := core.NewServer(sim, *name,
		time.Duration(*interval)*time.Millisecond,
		time.Duration(*jitter)*time.Millisecond,
		*seed,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (interval: %dms, jitter: %dms, tracks: %d)",
		*name, *port, *interval, *jitter, *aircraft+*balloons+*gliders)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
