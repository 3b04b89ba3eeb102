package smoothing

import (
	"math"
	"time"
)

const (
	// jitterMargin pads the adaptive render delay so ordinary arrival
	// jitter does not starve the bracket search.
	jitterMargin = 50 * time.Millisecond
	// bootstrapDelay is used until the estimator has seen a valid interval.
	bootstrapDelay = 250 * time.Millisecond
)

// State describes what the engine can currently produce.
type State int

const (
	StateEmpty         State = iota // no samples yet
	StateBootstrapping              // one sample, nothing to blend
	StateSmoothing                  // bracketed interpolation available
	StateStalled                    // render time has passed the newest sample
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBootstrapping:
		return "bootstrapping"
	case StateSmoothing:
		return "smoothing"
	case StateStalled:
		return "stalled"
	}
	return "unknown"
}

// Engine owns one entity's sample buffer and interval estimate and answers
// the per-frame question "what should be shown right now".
//
// Push (new report arrived) and Sample (render this frame) must run on the
// same event loop; the engine does no locking of its own.
type Engine struct {
	clock   Clock
	buf     Buffer
	est     IntervalEstimator
	lastArr time.Time
	stalled bool
}

// NewEngine creates an engine for one tracked entity. A nil clock means
// the system clock.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{clock: clock}
}

// Push ingests one confirmed sample, stamping it with the local arrival
// time. The inter-arrival interval feeds the delay estimator; the sample
// itself is always buffered, representative interval or not.
func (e *Engine) Push(pos Position, heading float64) {
	now := e.clock.Now()
	if !e.lastArr.IsZero() {
		e.est.Observe(now.Sub(e.lastArr))
	}
	e.lastArr = now
	e.buf.Push(Sample{Pos: pos, Heading: normalizeHeading(heading), Arrival: now})
}

// RenderDelay is how far behind real time the engine renders. It tracks
// the estimated feed cadence plus a jitter margin, so a bracket of
// confirmed samples around the render time normally exists. The estimator
// only absorbs intervals below 3s, which keeps the delay bounded.
func (e *Engine) RenderDelay() time.Duration {
	if est, ok := e.est.Estimate(); ok {
		return est + jitterMargin
	}
	return bootstrapDelay
}

// Sample returns the position and heading to display at now. ok is false
// only while the buffer is empty; every other degraded case still yields a
// best-effort answer.
func (e *Engine) Sample(now time.Time) (Position, float64, bool) {
	switch e.buf.Len() {
	case 0:
		e.stalled = false
		return Position{}, 0, false
	case 1:
		// Nothing to blend yet; show the report as-is.
		e.stalled = false
		s := e.buf.Latest()
		return s.Pos, s.Heading, true
	}

	renderTime := now.Add(-e.RenderDelay())

	if first := e.buf.At(0); renderTime.Before(first.Arrival) {
		// Render time predates everything buffered (possible right after
		// a reset, or when the delay grows). Hold the oldest sample.
		e.stalled = false
		return first.Pos, first.Heading, true
	}

	for i := 0; i+1 < e.buf.Len(); i++ {
		before, after := e.buf.At(i), e.buf.At(i+1)
		if after.Arrival.Before(renderTime) {
			continue
		}
		span := after.Arrival.Sub(before.Arrival)
		t := 1.0
		if span > 0 {
			t = clamp(float64(renderTime.Sub(before.Arrival))/float64(span), 0, 1)
		}
		pos := Position{
			Lat: before.Pos.Lat + t*(after.Pos.Lat-before.Pos.Lat),
			Lon: before.Pos.Lon + t*(after.Pos.Lon-before.Pos.Lon),
		}
		heading := lerpHeading(before.Heading, after.Heading, t)
		// Everything before the bracket anchor is behind the render time
		// for good; it will never be needed again.
		e.buf.PruneBefore(i)
		e.stalled = false
		return pos, heading, true
	}

	// The feed is lagging behind the chosen delay. Freeze on the newest
	// sample rather than extrapolate: a wrong guess snaps, a freeze doesn't.
	e.stalled = true
	s := e.buf.Latest()
	return s.Pos, s.Heading, true
}

// Reset drops all samples and the interval estimate. The engine never
// declares a feed lost on its own; the owner signals it here, typically
// when the entity leaves the roster.
func (e *Engine) Reset() {
	e.buf.Clear()
	e.est.Reset()
	e.lastArr = time.Time{}
	e.stalled = false
}

// State reports the engine's current degradation level. Stalled reflects
// the outcome of the most recent Sample call.
func (e *Engine) State() State {
	switch {
	case e.buf.Len() == 0:
		return StateEmpty
	case e.buf.Len() == 1:
		return StateBootstrapping
	case e.stalled:
		return StateStalled
	}
	return StateSmoothing
}

// BufferLen exposes the current buffer occupancy, for the HUD.
func (e *Engine) BufferLen() int { return e.buf.Len() }

// lerpHeading blends two headings along the shortest angular path, so 350°
// to 10° passes through north instead of swinging through 180°.
func lerpHeading(from, to, t float64) float64 {
	diff := to - from
	if diff > 180 {
		diff -= 360
	} else if diff <= -180 {
		diff += 360
	}
	return normalizeHeading(from + t*diff)
}

func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
