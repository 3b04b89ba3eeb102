package components

import (
	"github.com/skyloft/skywatch/smoothing"
	"github.com/yohamta/donburi"
)

// SmootherData owns the per-track interpolation engine and the render
// clock that feeds the marker. The camera's follow clock shares the same
// engine but lives on the camera.
type SmootherData struct {
	Engine *smoothing.Engine
	Marker *smoothing.RenderClock
}

var Smoother = donburi.NewComponentType[SmootherData]()
