package smoothing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatorUnknownBeforeObservation(t *testing.T) {
	var e IntervalEstimator
	_, ok := e.Estimate()
	assert.False(t, ok)
}

func TestEstimatorRejectsOutOfWindowIntervals(t *testing.T) {
	var e IntervalEstimator

	e.Observe(49 * time.Millisecond) // near-duplicate
	e.Observe(3 * time.Second)       // connectivity gap (window is half-open)
	e.Observe(time.Minute)
	_, ok := e.Estimate()
	assert.False(t, ok)

	e.Observe(50 * time.Millisecond) // lower bound is inclusive
	est, ok := e.Estimate()
	require.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, est)
}

func TestEstimatorSmoothing(t *testing.T) {
	var e IntervalEstimator

	e.Observe(1000 * time.Millisecond)
	est, ok := e.Estimate()
	require.True(t, ok)
	assert.Equal(t, 1000*time.Millisecond, est)

	// 0.7 retained history, 0.3 new sample.
	e.Observe(500 * time.Millisecond)
	est, _ = e.Estimate()
	assert.InDelta(t, float64(850*time.Millisecond), float64(est), float64(time.Millisecond))

	// A rejected interval leaves the estimate untouched.
	e.Observe(10 * time.Second)
	est, _ = e.Estimate()
	assert.InDelta(t, float64(850*time.Millisecond), float64(est), float64(time.Millisecond))
}

func TestEstimatorReset(t *testing.T) {
	var e IntervalEstimator
	e.Observe(800 * time.Millisecond)
	e.Reset()
	_, ok := e.Estimate()
	assert.False(t, ok)
}
