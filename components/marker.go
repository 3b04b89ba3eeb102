package components

import "github.com/yohamta/donburi"

// MarkerData is where a track's marker is actually drawn this frame: the
// smoothed position written by the track's render clock each tick. Raw
// network positions never reach the renderer directly.
type MarkerData struct {
	Lat     float64
	Lon     float64
	Heading float64
	Placed  bool // false until the engine produces its first output
}

var Marker = donburi.NewComponentType[MarkerData]()
