package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/smoothing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewCameraSystem returns the update system driving the map viewport:
// eased wheel zoom, drag/key panning, and follow mode. While following, a
// render clock on the followed track's engine moves the camera center, so
// the viewport glides exactly as smoothly as the marker it chases.
func NewCameraSystem(driver *smoothing.TickDriver) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		updateZoom(camera)
		updatePan(camera)
		updateFollowHotkeys(e, camera)
		updateFollow(e, camera, driver)
	}
}

func updateZoom(camera *components.CameraData) {
	if _, dy := ebiten.Wheel(); dy != 0 {
		target := camera.Zoom + dy*cfg.Camera.ZoomStep
		if target < cfg.Camera.MinZoom {
			target = cfg.Camera.MinZoom
		}
		if target > cfg.Camera.MaxZoom {
			target = cfg.Camera.MaxZoom
		}
		camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), cfg.Camera.ZoomTweenSecs, ease.OutQuad)
	}

	if camera.ZoomTween != nil {
		v, done := camera.ZoomTween.Update(1 / float32(ebiten.TPS()))
		camera.Zoom = float64(v)
		if done {
			camera.ZoomTween = nil
		}
	}
}

func updatePan(camera *components.CameraData) {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		camera.Dragging = false
		camera.LastDragX = mx
		camera.LastDragY = my
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := mx - camera.LastDragX
		dy := my - camera.LastDragY
		if camera.Dragging || dx*dx+dy*dy > 9 {
			camera.Dragging = true
			StopFollowing(camera)
			shiftCenter(camera, float64(-dx), float64(-dy))
			camera.LastDragX = mx
			camera.LastDragY = my
		}
	}

	// Arrow keys pan too, and likewise break follow mode.
	kx, ky := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		kx -= cfg.Camera.KeyPanPixels
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		kx += cfg.Camera.KeyPanPixels
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		ky -= cfg.Camera.KeyPanPixels
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		ky += cfg.Camera.KeyPanPixels
	}
	if kx != 0 || ky != 0 {
		StopFollowing(camera)
		shiftCenter(camera, kx, ky)
	}
}

func shiftCenter(camera *components.CameraData, dx, dy float64) {
	lat, lon := geoPosition(camera, float64(cfg.C.Width)/2+dx, float64(cfg.C.Height)/2+dy)
	camera.CenterLat = lat
	camera.CenterLon = lon
}

func updateFollowHotkeys(e *ecs.ECS, camera *components.CameraData) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if entry := selectedTrack(e); entry != nil {
			if id := esync.GetNetworkId(entry); id != nil {
				FollowTrack(camera, *id)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		StopFollowing(camera)
	}
}

// updateFollow keeps the follow clock in sync with the follow state. The
// clock is created lazily against the followed track's engine and released
// when the follow ends or the track drops off the roster.
func updateFollow(e *ecs.ECS, camera *components.CameraData, driver *smoothing.TickDriver) {
	if !camera.Following {
		return
	}

	entity := esync.FindByNetworkId(e.World, camera.FollowID)
	if !e.World.Valid(entity) {
		// The followed track left the feed.
		StopFollowing(camera)
		return
	}

	if camera.FollowClock == nil {
		entry := e.World.Entry(entity)
		if !entry.HasComponent(components.Smoother) {
			return
		}
		sm := components.Smoother.Get(entry)
		world := e.World
		camera.FollowClock = smoothing.NewRenderClock(sm.Engine,
			smoothing.ConsumerFunc(func(pos smoothing.Position, _ float64) {
				if camEntry, ok := components.Camera.First(world); ok {
					cam := components.Camera.Get(camEntry)
					cam.CenterLat = pos.Lat
					cam.CenterLon = pos.Lon
				}
			}))
		camera.FollowClock.Start(driver)
	}
}

// FollowTrack points the camera at a track. Any previous follow clock is
// released first; the camera system builds the new one on its next pass.
func FollowTrack(camera *components.CameraData, id esync.NetworkId) {
	if camera.Following && camera.FollowID == id {
		return
	}
	StopFollowing(camera)
	camera.Following = true
	camera.FollowID = id
}

// StopFollowing ends follow mode and releases the follow clock's frame
// registration. Safe to call on every exit path.
func StopFollowing(camera *components.CameraData) {
	if camera.FollowClock != nil {
		camera.FollowClock.Stop()
		camera.FollowClock = nil
	}
	camera.Following = false
}

func selectedTrack(e *ecs.ECS) *donburi.Entry {
	var found *donburi.Entry
	components.Track.Each(e.World, func(entry *donburi.Entry) {
		if components.Track.Get(entry).Selected {
			found = entry
		}
	})
	return found
}
