package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/network"
	"github.com/skyloft/skywatch/shared/netcomponents"
	"github.com/skyloft/skywatch/smoothing"
	"github.com/skyloft/skywatch/systems"
	"github.com/skyloft/skywatch/systems/factory"
	"github.com/skyloft/skywatch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene is the live map. Snapshots from the feed are pushed into
// per-track smoothing engines; the renderer only ever sees the smoothed
// marker positions the render clocks write each frame.
type ViewerScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	driver       *smoothing.TickDriver
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
}

func NewViewerScene(sc SceneChanger, client *network.Client) *ViewerScene {
	return &ViewerScene{
		sceneChanger: sc,
		netClient:    client,
		driver:       smoothing.NewTickDriver(),
		presentIDs:   make(map[esync.NetworkId]bool),
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)

	state := vs.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[viewer] feed lost, returning to connect screen")
		vs.teardown()
		vs.netClient.Disconnect()
		vs.sceneChanger.ChangeScene(NewConnectScene(vs.sceneChanger))
		return
	}

	if snap := vs.netClient.LatestSnapshot(); snap != nil {
		vs.applySnapshot(*snap)
	}

	vs.ecsWorld.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if vs.ecsWorld == nil {
		return
	}

	vs.ecsWorld.Draw(screen)
}

func (vs *ViewerScene) configure() {
	vs.ecsWorld = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(vs.ecsWorld, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCamera(vs.ecsWorld)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil && saved.Zoom != 0 {
		if entry, ok := components.Camera.First(vs.ecsWorld.World); ok {
			zoom := saved.Zoom
			if zoom < cfg.Camera.MinZoom {
				zoom = cfg.Camera.MinZoom
			}
			if zoom > cfg.Camera.MaxZoom {
				zoom = cfg.Camera.MaxZoom
			}
			components.Camera.Get(entry).Zoom = zoom
		}
	}

	vs.ecsWorld.AddSystem(systems.NewSmoothingSystem(vs.driver))
	vs.ecsWorld.AddSystem(systems.NewCameraSystem(vs.driver))
	vs.ecsWorld.AddSystem(systems.UpdatePicking)
	vs.ecsWorld.AddRenderer(cfg.Default, systems.DrawBasemap)
	vs.ecsWorld.AddRenderer(cfg.Default, systems.DrawTracks)
	vs.ecsWorld.AddRenderer(cfg.Default, systems.NewHUDSystem(vs.status))
}

func (vs *ViewerScene) status() string {
	switch vs.netClient.State() {
	case network.StateJoinedFeed:
		return fmt.Sprintf("feed: %s (%dms)", vs.netClient.ServerName(), vs.netClient.FeedIntervalMs())
	case network.StateConnecting:
		return "connecting"
	case network.StateConnected:
		return "joining"
	}
	return "offline"
}

func (vs *ViewerScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := vs.ecsWorld.World

	clear(vs.presentIDs)

	for _, ent := range snapshot {
		vs.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(compData)...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)

			vs.initTrackEntry(entry)
		}

		entry := world.Entry(entity)

		for _, data := range compData {
			switch v := data.(type) {
			case netcomponents.NetTrackData:
				netcomponents.NetTrack.SetValue(entry, v)
				// Feed every report into the engine; the renderer picks
				// it up later, once renderTime reaches it.
				sm := components.Smoother.Get(entry)
				sm.Engine.Push(smoothing.Position{Lat: v.Lat, Lon: v.Lon}, v.Heading)
				components.Track.Get(entry).SpeedKn = v.SpeedKn
			case netcomponents.NetTrackInfoData:
				netcomponents.NetTrackInfo.SetValue(entry, v)
				track := components.Track.Get(entry)
				track.Callsign = v.Callsign
				track.Kind = v.Kind
			}
		}
	}

	vs.sweepDeparted(world)
}

// initTrackEntry attaches the viewer-side state to a freshly created
// networked entity: identity, marker, smoothing engine with its render
// clock, and a pick box in the collision space.
func (vs *ViewerScene) initTrackEntry(entry *donburi.Entry) {
	world := vs.ecsWorld.World
	entity := entry.Entity()

	entry.AddComponent(tags.Track)
	entry.AddComponent(components.Track)
	entry.AddComponent(components.Marker)
	entry.AddComponent(components.Smoother)
	entry.AddComponent(components.Object)

	engine := smoothing.NewEngine(nil)
	clock := smoothing.NewRenderClock(engine, smoothing.ConsumerFunc(func(pos smoothing.Position, heading float64) {
		if !world.Valid(entity) {
			return
		}
		marker := components.Marker.Get(world.Entry(entity))
		marker.Lat = pos.Lat
		marker.Lon = pos.Lon
		marker.Heading = heading
		marker.Placed = true
	}))
	components.Smoother.SetValue(entry, components.SmootherData{
		Engine: engine,
		Marker: clock,
	})
	clock.Start(vs.driver)

	obj := resolv.NewObject(-1000, -1000, cfg.Track.PickSize, cfg.Track.PickSize, tags.ResolvMarker)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(world); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// sweepDeparted removes every networked entity absent from the latest
// snapshot, releasing its render clock and pick box on the way out.
func (vs *ViewerScene) sweepDeparted(world donburi.World) {
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || vs.presentIDs[*id] {
			return
		}
		vs.releaseTrackEntry(entry, *id)
		entry.Remove()
	})
}

func (vs *ViewerScene) releaseTrackEntry(entry *donburi.Entry, id esync.NetworkId) {
	if entry.HasComponent(components.Smoother) {
		sm := components.Smoother.Get(entry)
		if sm.Marker != nil {
			sm.Marker.Stop()
		}
		if sm.Engine != nil {
			sm.Engine.Reset()
		}
	}

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	if camEntry, ok := components.Camera.First(vs.ecsWorld.World); ok {
		camera := components.Camera.Get(camEntry)
		if camera.Following && camera.FollowID == id {
			systems.StopFollowing(camera)
		}
	}
}

// teardown releases everything holding a frame registration and persists
// the viewport zoom for the next session.
func (vs *ViewerScene) teardown() {
	if vs.ecsWorld == nil {
		return
	}
	world := vs.ecsWorld.World

	components.Track.Each(world, func(entry *donburi.Entry) {
		if id := esync.GetNetworkId(entry); id != nil {
			vs.releaseTrackEntry(entry, *id)
		}
	})

	if camEntry, ok := components.Camera.First(world); ok {
		camera := components.Camera.Get(camEntry)
		systems.StopFollowing(camera)

		saved, _ := systems.LoadSettings()
		if saved == nil {
			saved = &systems.SavedSettings{}
		}
		saved.Zoom = camera.Zoom
		_ = systems.SaveSettings(saved)
	}
}

func componentTypesFromInstances(compData []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range compData {
		switch data.(type) {
		case netcomponents.NetTrackData:
			ctypes = append(ctypes, netcomponents.NetTrack)
		case netcomponents.NetTrackInfoData:
			ctypes = append(ctypes, netcomponents.NetTrackInfo)
		}
	}
	return ctypes
}
