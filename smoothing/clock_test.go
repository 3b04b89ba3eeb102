package smoothing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClockLifecycle(t *testing.T) {
	clk := newFakeClock()
	engine := NewEngine(clk)
	driver := NewTickDriver()

	var got []Position
	rc := NewRenderClock(engine, ConsumerFunc(func(pos Position, _ float64) {
		got = append(got, pos)
	}))

	rc.Start(driver)
	require.True(t, rc.Running())
	require.Equal(t, 1, driver.Scheduled())

	// Starting again must not double-register.
	rc.Start(driver)
	assert.Equal(t, 1, driver.Scheduled())

	// Empty engine: a tick produces no output.
	driver.Tick()
	assert.Empty(t, got)

	engine.Push(Position{Lat: 7}, 0)
	driver.Tick()
	require.Len(t, got, 1)
	assert.Equal(t, 7.0, got[0].Lat)

	rc.Stop()
	assert.False(t, rc.Running())
	assert.Equal(t, 0, driver.Scheduled())

	// Stopped clocks see no further frames, and Stop stays idempotent.
	driver.Tick()
	assert.Len(t, got, 1)
	rc.Stop()
}

func TestTwoConsumersShareOneEngine(t *testing.T) {
	clk := newFakeClock()
	engine := NewEngine(clk)
	driver := NewTickDriver()

	var marker, camera Position
	markerClock := NewRenderClock(engine, ConsumerFunc(func(pos Position, _ float64) { marker = pos }))
	cameraClock := NewRenderClock(engine, ConsumerFunc(func(pos Position, _ float64) { camera = pos }))
	markerClock.Start(driver)
	cameraClock.Start(driver)
	require.Equal(t, 2, driver.Scheduled())

	engine.Push(Position{Lat: 10, Lon: 10}, 0)
	clk.advance(1000 * time.Millisecond)
	engine.Push(Position{Lat: 11, Lon: 11}, 0)
	clk.advance(500 * time.Millisecond)

	// Both consumers query the same buffer at the same frame time and must
	// land on the same blended position, even though the first query
	// prunes the buffer.
	driver.Tick()
	assert.Equal(t, marker, camera)
	assert.Greater(t, marker.Lat, 10.0)
	assert.Less(t, marker.Lat, 11.0)

	// Tearing down one consumer leaves the other running.
	cameraClock.Stop()
	assert.Equal(t, 1, driver.Scheduled())
	markerClock.Stop()
	assert.Equal(t, 0, driver.Scheduled())
}

func TestRenderClockKeepsAnimatingWithoutNewSamples(t *testing.T) {
	clk := newFakeClock()
	engine := NewEngine(clk)
	driver := NewTickDriver()

	var frames []float64
	rc := NewRenderClock(engine, ConsumerFunc(func(pos Position, _ float64) {
		frames = append(frames, pos.Lat)
	}))
	rc.Start(driver)
	defer rc.Stop()

	engine.Push(Position{Lat: 0}, 0)
	clk.advance(1000 * time.Millisecond)
	engine.Push(Position{Lat: 1}, 0)

	// The feed goes quiet, but the already-confirmed bracket keeps the
	// output moving frame after frame.
	clk.advance(100 * time.Millisecond)
	for i := 0; i < 10; i++ {
		driver.Tick()
		clk.advance(50 * time.Millisecond)
	}
	require.Len(t, frames, 10)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i], frames[i-1])
	}
	assert.Greater(t, frames[len(frames)-1], frames[0])
}
