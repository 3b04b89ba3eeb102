package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/skyloft/skywatch/shared/geomath"
	"github.com/skyloft/skywatch/shared/netconfig"
)

// SimTrack is one simulated target in the feed.
type SimTrack struct {
	Callsign string
	Kind     netconfig.TrackKind
	Lat      float64
	Lon      float64
	Heading  float64
	SpeedKn  float64
}

// Simulation advances a fleet of simulated tracks. All randomness comes
// from the seeded source, so two simulations built with the same seed
// produce identical trajectories.
type Simulation struct {
	rng    *rand.Rand
	tracks []*SimTrack
}

func NewSimulation(seed int64, centerLat, centerLon float64, aircraft, balloons, gliders int) *Simulation {
	s := &Simulation{rng: rand.New(rand.NewSource(seed))}

	for i := 0; i < aircraft; i++ {
		s.spawn(fmt.Sprintf("SKW%03d", i+100), netconfig.KindAircraft, centerLat, centerLon, 80, 250)
	}
	for i := 0; i < balloons; i++ {
		s.spawn(fmt.Sprintf("BAL%02d", i+1), netconfig.KindBalloon, centerLat, centerLon, 5, 20)
	}
	for i := 0; i < gliders; i++ {
		s.spawn(fmt.Sprintf("GLD%02d", i+1), netconfig.KindGlider, centerLat, centerLon, 40, 90)
	}

	return s
}

func (s *Simulation) spawn(callsign string, kind netconfig.TrackKind, centerLat, centerLon, minKn, maxKn float64) {
	s.tracks = append(s.tracks, &SimTrack{
		Callsign: callsign,
		Kind:     kind,
		Lat:      centerLat + (s.rng.Float64()-0.5)*1.5,
		Lon:      centerLon + (s.rng.Float64()-0.5)*2.0,
		Heading:  s.rng.Float64() * 360,
		SpeedKn:  minKn + s.rng.Float64()*(maxKn-minKn),
	})
}

// Advance moves every track by dt along its heading, with a small random
// heading drift so trajectories curve instead of running straight.
func (s *Simulation) Advance(dt time.Duration) {
	secs := dt.Seconds()
	for _, t := range s.tracks {
		drift := driftRate(t.Kind)
		t.Heading = geomath.NormalizeHeading(t.Heading + (s.rng.Float64()*2-1)*drift*secs)
		meters := geomath.KnotsToMetersPerSecond(t.SpeedKn) * secs
		t.Lat, t.Lon = geomath.Destination(t.Lat, t.Lon, t.Heading, meters)
	}
}

// driftRate is the maximum heading wander in degrees per second. Balloons
// ride the wind; aircraft mostly hold course.
func driftRate(kind netconfig.TrackKind) float64 {
	switch kind {
	case netconfig.KindBalloon:
		return 12
	case netconfig.KindGlider:
		return 6
	}
	return 2
}

func (s *Simulation) Tracks() []*SimTrack { return s.tracks }
