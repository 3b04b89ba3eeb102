package core

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/skyloft/skywatch/shared/messages"
	"github.com/skyloft/skywatch/shared/netcomponents"
	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Server owns the simulation, the feed loop, and the WebSocket transport.
// Every sim track is mirrored into a network-synced ECS entity; each feed
// tick rewrites the synced components and pushes a snapshot to every
// connected viewer.
type Server struct {
	world     donburi.World
	sim       *Simulation
	loop      *FeedLoop
	transport *transports.WsServerTransport
	name      string
	interval  time.Duration

	trackEntities []donburi.Entity

	mu      sync.RWMutex
	clients map[*router.NetworkClient]struct{}
}

func NewServer(sim *Simulation, name string, interval, jitter time.Duration, seed int64) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:    world,
		sim:      sim,
		name:     name,
		interval: interval,
		clients:  make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewFeedLoop(s, interval, jitter, seed)

	srvsync.UseEsync(world)
	s.spawnTracks()
	s.setupRouterCallbacks()

	return s
}

// Start begins the feed loop and serves WebSocket connections on port.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the feed loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) spawnTracks() {
	for _, t := range s.sim.Tracks() {
		entity := s.world.Create(
			netcomponents.NetTrack,
			netcomponents.NetTrackInfo,
		)

		entry := s.world.Entry(entity)
		netcomponents.NetTrack.Set(entry, &netcomponents.NetTrackData{
			Lat:     t.Lat,
			Lon:     t.Lon,
			Heading: t.Heading,
			SpeedKn: t.SpeedKn,
		})
		netcomponents.NetTrackInfo.Set(entry, &netcomponents.NetTrackInfoData{
			Callsign: t.Callsign,
			Kind:     t.Kind,
		})

		err := srvsync.NetworkSync(s.world, &entity,
			netcomponents.NetTrack,
			netcomponents.NetTrackInfo,
		)
		if err != nil {
			log.Printf("Failed to setup network sync for %s: %v", t.Callsign, err)
			continue
		}

		s.trackEntities = append(s.trackEntities, entity)
	}

	log.Printf("Spawned %d synced tracks", len(s.trackEntities))
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("Client %s disconnected", client.Id())
		}
		s.mu.Lock()
		delete(s.clients, client)
		s.mu.Unlock()
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if req.Version != netconfig.ProtocolVersion {
		log.Printf("Rejecting %s: protocol %q (want %q)", req.ClientName, req.Version, netconfig.ProtocolVersion)
		if err := client.SendMessage(messages.JoinRejected{
			Reason: "protocol version mismatch",
		}); err != nil {
			log.Printf("Failed to send join rejection: %v", err)
		}
		return
	}

	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	log.Printf("Viewer %q joined (client %s)", req.ClientName, client.Id())

	err := client.SendMessage(messages.JoinAccepted{
		ServerName:     s.name,
		FeedIntervalMs: int(s.interval.Milliseconds()),
		TrackCount:     len(s.trackEntities),
	})
	if err != nil {
		log.Printf("Failed to send join acceptance: %v", err)
	}
}

// step advances the simulation and publishes a snapshot. Runs on the feed
// loop goroutine; the world is only ever touched here after startup.
func (s *Server) step(dt time.Duration) {
	s.sim.Advance(dt)
	s.publishTracks()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}

func (s *Server) publishTracks() {
	tracks := s.sim.Tracks()
	for i, entity := range s.trackEntities {
		if !s.world.Valid(entity) || i >= len(tracks) {
			continue
		}
		t := tracks[i]
		net := netcomponents.NetTrack.Get(s.world.Entry(entity))
		net.Lat = t.Lat
		net.Lon = t.Lon
		net.Heading = t.Heading
		net.SpeedKn = t.SpeedKn
	}
}

// ClientCount returns the number of joined viewers.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
