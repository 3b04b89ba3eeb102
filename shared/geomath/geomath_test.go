package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectOrigin(t *testing.T) {
	// At zoom 0 the world is one 256px tile; (0,0) sits dead center.
	px, py := Project(0, 0, 0)
	assert.InDelta(t, 128, px, 1e-9)
	assert.InDelta(t, 128, py, 1e-9)
}

func TestProjectOrientation(t *testing.T) {
	px0, py0 := Project(0, 0, 4)
	pxE, _ := Project(0, 10, 4)
	_, pyN := Project(10, 0, 4)

	assert.Greater(t, pxE, px0, "east must increase pixel x")
	assert.Less(t, pyN, py0, "north must decrease pixel y")
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	cases := []struct{ lat, lon float64 }{
		{0, 0},
		{51.47, -0.45},
		{-33.95, 151.18},
		{64.13, -21.94},
	}
	for _, tc := range cases {
		px, py := Project(tc.lat, tc.lon, 9)
		lat, lon := Unproject(px, py, 9)
		assert.InDelta(t, tc.lat, lat, 1e-6)
		assert.InDelta(t, tc.lon, lon, 1e-6)
	}
}

func TestDestination(t *testing.T) {
	// Due north: latitude grows, longitude untouched.
	lat, lon := Destination(50, 8, 0, 1113.2)
	assert.InDelta(t, 50.01, lat, 1e-4)
	assert.InDelta(t, 8, lon, 1e-9)

	// Due east at the equator: one degree is ~111.32km.
	lat, lon = Destination(0, 8, 90, 111320)
	assert.InDelta(t, 0, lat, 1e-6)
	assert.InDelta(t, 9, lon, 1e-3)
}

func TestNormalizeHeading(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeHeading(360))
	assert.Equal(t, 350.0, NormalizeHeading(-10))
	assert.Equal(t, 90.0, NormalizeHeading(450))
}
