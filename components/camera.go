package components

import (
	"github.com/leap-fish/necs/esync"
	"github.com/skyloft/skywatch/smoothing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData is the map viewport: a geographic center plus a Web Mercator
// zoom level.
type CameraData struct {
	CenterLat float64
	CenterLon float64
	Zoom      float64
	ZoomTween *gween.Tween // nil when no zoom animation is running

	// Follow state. While following, a second render clock on the
	// followed track's engine drives the center; it must be stopped on
	// every path that ends the follow.
	Following   bool
	FollowID    esync.NetworkId
	FollowClock *smoothing.RenderClock

	Dragging  bool
	LastDragX int
	LastDragY int
}

var Camera = donburi.NewComponentType[CameraData]()
