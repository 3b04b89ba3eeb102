package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePicking keeps each marker's resolv object glued to its on-screen
// position and resolves clicks into track selection. A click also starts
// following the picked track.
func UpdatePicking(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	half := cfg.Track.PickSize / 2
	components.Track.Each(e.World, func(entry *donburi.Entry) {
		marker := components.Marker.Get(entry)
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		if !marker.Placed {
			// Parked outside the space until the first smoothed output.
			obj.X, obj.Y = -1000, -1000
		} else {
			x, y := screenPosition(camera, marker.Lat, marker.Lon)
			obj.X = x - half
			obj.Y = y - half
		}
		obj.Update()
	})

	// A release that never turned into a drag is a click.
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || camera.Dragging {
		return
	}

	mx, my := ebiten.CursorPosition()
	cursor := resolv.NewObject(float64(mx), float64(my), 1, 1, tags.ResolvCursor)
	space.Add(cursor)
	cursor.Update()

	if check := cursor.Check(0, 0, tags.ResolvMarker); check != nil {
		if picked := nearestObject(check.Objects, float64(mx), float64(my)); picked != nil {
			if entry, ok := picked.Data.(*donburi.Entry); ok {
				selectTrack(e, entry, camera)
			}
		}
	}
	space.Remove(cursor)
}

func nearestObject(objects []*resolv.Object, x, y float64) *resolv.Object {
	var best *resolv.Object
	bestDist := math.MaxFloat64
	for _, obj := range objects {
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2
		d := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		if d < bestDist {
			bestDist = d
			best = obj
		}
	}
	return best
}

func selectTrack(e *ecs.ECS, picked *donburi.Entry, camera *components.CameraData) {
	components.Track.Each(e.World, func(entry *donburi.Entry) {
		components.Track.Get(entry).Selected = entry.Entity() == picked.Entity()
	})
	if id := esync.GetNetworkId(picked); id != nil {
		FollowTrack(camera, *id)
	}
}
