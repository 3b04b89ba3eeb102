package smoothing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually-advanced Clock so tests control frame timing.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSampleEmptyAndSingle(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	_, _, ok := e.Sample(clk.Now())
	require.False(t, ok)
	assert.Equal(t, StateEmpty, e.State())

	e.Push(Position{Lat: 51.5, Lon: -0.1}, 45)
	pos, heading, ok := e.Sample(clk.Now())
	require.True(t, ok)
	assert.Equal(t, Position{Lat: 51.5, Lon: -0.1}, pos)
	assert.Equal(t, 45.0, heading)
	assert.Equal(t, StateBootstrapping, e.State())
}

func TestLinearBlendWithinBracket(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	e.Push(Position{Lat: 0, Lon: 0}, 0)
	clk.advance(1000 * time.Millisecond)
	e.Push(Position{Lat: 1, Lon: 1}, 90)

	// One valid 1000ms interval observed: renderDelay = 1000 + 50ms.
	require.Equal(t, 1050*time.Millisecond, e.RenderDelay())

	// renderTime = 1950 - 1050 = 900 → fraction 0.9 of the bracket.
	pos, heading, ok := e.Sample(start.Add(1950 * time.Millisecond))
	require.True(t, ok)
	assert.InDelta(t, 0.9, pos.Lat, 1e-9)
	assert.InDelta(t, 0.9, pos.Lon, 1e-9)
	assert.InDelta(t, 81.0, heading, 1e-9)
	assert.Equal(t, StateSmoothing, e.State())

	// renderTime = 2100 - 1050 = 1050, past the newest sample → freeze.
	pos, heading, ok = e.Sample(start.Add(2100 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, Position{Lat: 1, Lon: 1}, pos)
	assert.Equal(t, 90.0, heading)
	assert.Equal(t, StateStalled, e.State())
}

func TestBootstrapDelayBeforeEstimate(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	e.Push(Position{Lat: 0, Lon: 0}, 0)
	clk.advance(10 * time.Millisecond) // below the 50ms window: not observed
	e.Push(Position{Lat: 1, Lon: 0}, 0)

	require.Equal(t, 250*time.Millisecond, e.RenderDelay())

	// renderTime = 259 - 250 = 9ms → 0.9 through the 10ms bracket.
	pos, _, ok := e.Sample(start.Add(259 * time.Millisecond))
	require.True(t, ok)
	assert.InDelta(t, 0.9, pos.Lat, 1e-9)
}

func TestHeadingShortestPath(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	e.Push(Position{}, 350)
	clk.advance(1000 * time.Millisecond)
	e.Push(Position{}, 10)

	// Midpoint of the bracket: renderTime = 1550 - 1050 = 500.
	_, heading, ok := e.Sample(start.Add(1550 * time.Millisecond))
	require.True(t, ok)
	assert.InDelta(t, 0.0, heading, 1e-9) // crosses north, not 180
}

func TestLerpHeading(t *testing.T) {
	cases := []struct {
		name     string
		from, to float64
		t        float64
		want     float64
	}{
		{"wrap up through north", 350, 10, 0.5, 0},
		{"wrap down through north", 10, 350, 0.5, 0},
		{"plain quarter turn", 0, 90, 0.5, 45},
		{"opposite headings go up", 0, 180, 0.5, 90},
		{"start of blend", 350, 10, 0, 350},
		{"end of blend", 350, 10, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, lerpHeading(tc.from, tc.to, tc.t), 1e-9)
		})
	}
}

func TestMonotonicWithinBrackets(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	for i := 0; i < 3; i++ {
		e.Push(Position{Lat: float64(i), Lon: 0}, 0)
		if i < 2 {
			clk.advance(1000 * time.Millisecond)
		}
	}

	// Strictly increasing frame times must never move the output backward.
	prev := -1.0
	for now := 1100 * time.Millisecond; now <= 2900*time.Millisecond; now += 16 * time.Millisecond {
		pos, _, ok := e.Sample(start.Add(now))
		require.True(t, ok)
		require.GreaterOrEqual(t, pos.Lat, prev, "output moved backward at frame time %v", now)
		prev = pos.Lat
	}
}

func TestFreezeOnStallAndRecovery(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	e.Push(Position{Lat: 0, Lon: 0}, 0)
	clk.advance(1000 * time.Millisecond)
	e.Push(Position{Lat: 1, Lon: 1}, 90)

	// No further samples for far longer than the render delay: the output
	// pins to the newest sample exactly, frame after frame.
	for i := 0; i < 5; i++ {
		clk.advance(2 * time.Second)
		pos, heading, ok := e.Sample(clk.Now())
		require.True(t, ok)
		assert.Equal(t, Position{Lat: 1, Lon: 1}, pos)
		assert.Equal(t, 90.0, heading)
	}
	assert.Equal(t, StateStalled, e.State())

	// The next sample restores a usable bracket.
	e.Push(Position{Lat: 2, Lon: 2}, 90)
	clk.advance(100 * time.Millisecond)
	pos, _, ok := e.Sample(clk.Now())
	require.True(t, ok)
	assert.Equal(t, StateSmoothing, e.State())
	assert.Greater(t, pos.Lat, 1.0)
	assert.Less(t, pos.Lat, 2.0)
}

func TestBufferBounded(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	for i := 0; i < 25; i++ {
		e.Push(Position{Lat: float64(i)}, 0)
		clk.advance(100 * time.Millisecond)
	}
	assert.Equal(t, BufferCap, e.BufferLen())
}

func TestRenderDelayConvergence(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	// Constant 1Hz cadence: the EMA of a constant is the constant.
	for i := 0; i < 5; i++ {
		e.Push(Position{}, 0)
		clk.advance(1000 * time.Millisecond)
	}
	assert.Equal(t, 1050*time.Millisecond, e.RenderDelay())

	// The feed switches to 5Hz; the delay re-converges toward 250ms.
	for i := 0; i < 12; i++ {
		e.Push(Position{}, 0)
		clk.advance(200 * time.Millisecond)
	}
	delay := e.RenderDelay()
	assert.Less(t, delay, 300*time.Millisecond)
	assert.GreaterOrEqual(t, delay, 250*time.Millisecond)
}

func TestRenderDelayBounded(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	// A historically very slow feed cannot push the delay past the
	// interval window: intervals >= 3s never reach the estimator.
	e.Push(Position{}, 0)
	for i := 0; i < 10; i++ {
		clk.advance(2900 * time.Millisecond)
		e.Push(Position{}, 0)
	}
	assert.Equal(t, 2950*time.Millisecond, e.RenderDelay())

	for i := 0; i < 10; i++ {
		clk.advance(10 * time.Second)
		e.Push(Position{}, 0)
	}
	assert.Equal(t, 2950*time.Millisecond, e.RenderDelay())
}

func TestZeroDurationBracketSnapsToLater(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	// Two samples with identical arrival times: duplicate timestamps are
	// not filtered, and the degenerate bracket resolves to the later one.
	e.Push(Position{Lat: 0, Lon: 0}, 0)
	e.Push(Position{Lat: 5, Lon: 5}, 180)

	pos, heading, ok := e.Sample(start.Add(250 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, Position{Lat: 5, Lon: 5}, pos)
	assert.Equal(t, 180.0, heading)
}

func TestRenderTimePredatesBuffer(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	e.Push(Position{Lat: 3, Lon: 4}, 200)
	clk.advance(100 * time.Millisecond)
	e.Push(Position{Lat: 5, Lon: 6}, 210)

	// renderDelay (150ms) reaches back before the oldest sample: hold it.
	pos, heading, ok := e.Sample(start.Add(50 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, Position{Lat: 3, Lon: 4}, pos)
	assert.Equal(t, 200.0, heading)
}

func TestPruneAfterBracket(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	e := NewEngine(clk)

	for i := 0; i < 5; i++ {
		e.Push(Position{Lat: float64(i)}, 0)
		clk.advance(1000 * time.Millisecond)
	}
	require.Equal(t, 5, e.BufferLen())

	// renderTime lands in the bracket between samples 3 and 4; everything
	// before sample 3 is unreachable afterwards and gets pruned.
	_, _, ok := e.Sample(start.Add(4500 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 2, e.BufferLen())
}

func TestReset(t *testing.T) {
	clk := newFakeClock()
	e := NewEngine(clk)

	e.Push(Position{Lat: 1}, 10)
	clk.advance(1000 * time.Millisecond)
	e.Push(Position{Lat: 2}, 20)
	require.Equal(t, StateSmoothing, e.State())
	require.Equal(t, 1050*time.Millisecond, e.RenderDelay())

	e.Reset()
	assert.Equal(t, StateEmpty, e.State())
	assert.Equal(t, 250*time.Millisecond, e.RenderDelay())
	_, _, ok := e.Sample(clk.Now())
	assert.False(t, ok)
}
