// Package netconfig defines lightweight types shared between the viewer
// and the feed server for network serialization. It must have zero
// dependencies on ebiten or any graphics library so the feed server binary
// stays headless.
package netconfig

// ProtocolVersion guards the join handshake; server and client must agree.
const ProtocolVersion = "1"

// TrackKind identifies what kind of entity a track is.
type TrackKind uint8

const (
	KindAircraft TrackKind = iota
	KindBalloon
	KindGlider
)

func (k TrackKind) String() string {
	switch k {
	case KindAircraft:
		return "aircraft"
	case KindBalloon:
		return "balloon"
	case KindGlider:
		return "glider"
	}
	return "unknown"
}
