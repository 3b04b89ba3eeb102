// Package smoothing turns a sparse, irregularly-timed stream of confirmed
// position reports into a continuously smooth, frame-accurate position.
//
// The engine renders slightly in the past: every displayed point lies
// between two samples that have already arrived, so the output can be
// smooth without ever guessing ahead of the data. The cost is a small,
// bounded latency; the payoff is that a late report never causes a
// correction snap.
package smoothing

import "time"

// Position is a geographic point in degrees.
type Position struct {
	Lat float64
	Lon float64
}

// Sample is one confirmed observation of a tracked entity. Arrival is the
// local ingestion time, not any timestamp the feed claims; the engine only
// reasons about when it learned a fact.
type Sample struct {
	Pos     Position
	Heading float64 // degrees, [0, 360)
	Arrival time.Time
}

// Clock supplies the engine's notion of now. time.Time values from
// time.Now carry a monotonic reading, so wall-clock adjustments do not
// disturb interpolation. Tests inject a manually-advanced clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the runtime clock.
func SystemClock() Clock { return systemClock{} }
