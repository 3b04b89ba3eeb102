package components

import (
	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/yohamta/donburi"
)

// TrackData is the viewer-side identity and feed metadata of one tracked
// entity.
type TrackData struct {
	Callsign string
	Kind     netconfig.TrackKind
	SpeedKn  float64
	Selected bool
}

var Track = donburi.NewComponentType[TrackData]()
