package core

import (
	"testing"
	"time"

	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationDeterministicForSeed(t *testing.T) {
	a := NewSimulation(42, 48.3, 7.8, 3, 2, 1)
	b := NewSimulation(42, 48.3, 7.8, 3, 2, 1)

	for i := 0; i < 10; i++ {
		a.Advance(time.Second)
		b.Advance(time.Second)
	}

	require.Len(t, b.Tracks(), len(a.Tracks()))
	for i, ta := range a.Tracks() {
		tb := b.Tracks()[i]
		assert.Equal(t, ta.Callsign, tb.Callsign)
		assert.Equal(t, ta.Lat, tb.Lat)
		assert.Equal(t, ta.Lon, tb.Lon)
		assert.Equal(t, ta.Heading, tb.Heading)
	}
}

func TestSimulationFleetComposition(t *testing.T) {
	sim := NewSimulation(7, 48.3, 7.8, 4, 3, 2)
	require.Len(t, sim.Tracks(), 9)

	counts := map[netconfig.TrackKind]int{}
	for _, tr := range sim.Tracks() {
		counts[tr.Kind]++
	}
	assert.Equal(t, 4, counts[netconfig.KindAircraft])
	assert.Equal(t, 3, counts[netconfig.KindBalloon])
	assert.Equal(t, 2, counts[netconfig.KindGlider])
}

func TestSimulationSpeedRanges(t *testing.T) {
	sim := NewSimulation(99, 48.3, 7.8, 5, 5, 5)

	for _, tr := range sim.Tracks() {
		switch tr.Kind {
		case netconfig.KindAircraft:
			assert.GreaterOrEqual(t, tr.SpeedKn, 80.0, tr.Callsign)
			assert.LessOrEqual(t, tr.SpeedKn, 250.0, tr.Callsign)
		case netconfig.KindBalloon:
			assert.GreaterOrEqual(t, tr.SpeedKn, 5.0, tr.Callsign)
			assert.LessOrEqual(t, tr.SpeedKn, 20.0, tr.Callsign)
		case netconfig.KindGlider:
			assert.GreaterOrEqual(t, tr.SpeedKn, 40.0, tr.Callsign)
			assert.LessOrEqual(t, tr.SpeedKn, 90.0, tr.Callsign)
		}
	}
}

func TestAdvanceMovesTracksAndKeepsHeadingsNormalized(t *testing.T) {
	sim := NewSimulation(1, 48.3, 7.8, 3, 1, 1)

	before := make(map[string][2]float64)
	for _, tr := range sim.Tracks() {
		before[tr.Callsign] = [2]float64{tr.Lat, tr.Lon}
	}

	for i := 0; i < 30; i++ {
		sim.Advance(time.Second)
	}

	for _, tr := range sim.Tracks() {
		prev := before[tr.Callsign]
		moved := tr.Lat != prev[0] || tr.Lon != prev[1]
		assert.True(t, moved, "%s did not move", tr.Callsign)
		assert.GreaterOrEqual(t, tr.Heading, 0.0, tr.Callsign)
		assert.Less(t, tr.Heading, 360.0, tr.Callsign)
	}
}

func TestAdvanceZeroDurationIsNoop(t *testing.T) {
	sim := NewSimulation(5, 48.3, 7.8, 2, 0, 0)
	tr := sim.Tracks()[0]
	lat, lon := tr.Lat, tr.Lon

	sim.Advance(0)

	assert.Equal(t, lat, tr.Lat)
	assert.Equal(t, lon, tr.Lon)
}
