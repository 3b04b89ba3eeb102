package smoothing

import "time"

// Sanity window for raw inter-arrival intervals. Anything faster is a
// duplicate or a burst flush, anything slower is a connectivity gap;
// neither says anything about the feed's real cadence.
const (
	minObservedInterval = 50 * time.Millisecond
	maxObservedInterval = 3 * time.Second
)

// emaWeight is the fraction a new interval contributes to the estimate:
// high enough to re-converge within a few samples when a feed changes
// rate, low enough not to chase a single jittery gap.
const emaWeight = 0.3

// IntervalEstimator maintains an exponential moving average of the
// observed inter-sample arrival period for one entity.
type IntervalEstimator struct {
	ema time.Duration // 0 means unknown
}

// Observe folds one raw inter-arrival interval into the estimate.
// Intervals outside the sanity window are silently ignored.
func (e *IntervalEstimator) Observe(raw time.Duration) {
	if raw < minObservedInterval || raw >= maxObservedInterval {
		return
	}
	if e.ema == 0 {
		e.ema = raw
		return
	}
	e.ema = time.Duration((1-emaWeight)*float64(e.ema) + emaWeight*float64(raw))
}

// Estimate returns the smoothed interval, or ok=false before the first
// valid observation.
func (e *IntervalEstimator) Estimate() (time.Duration, bool) {
	return e.ema, e.ema != 0
}

// Reset forgets the estimate. Called when the entity's feed is lost.
func (e *IntervalEstimator) Reset() { e.ema = 0 }
