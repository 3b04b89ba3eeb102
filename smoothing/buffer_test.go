package smoothing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSample(lat float64, arrival time.Time) Sample {
	return Sample{Pos: Position{Lat: lat}, Arrival: arrival}
}

func TestBufferCapDropsOldest(t *testing.T) {
	var b Buffer
	base := time.Now()
	for i := 0; i < BufferCap+5; i++ {
		b.Push(mkSample(float64(i), base.Add(time.Duration(i)*time.Second)))
	}
	require.Equal(t, BufferCap, b.Len())
	assert.Equal(t, 5.0, b.At(0).Pos.Lat)
	assert.Equal(t, float64(BufferCap+4), b.Latest().Pos.Lat)
}

func TestBufferPruneKeepsAnchor(t *testing.T) {
	var b Buffer
	base := time.Now()
	for i := 0; i < 6; i++ {
		b.Push(mkSample(float64(i), base.Add(time.Duration(i)*time.Second)))
	}

	b.PruneBefore(3)
	require.Equal(t, 3, b.Len())
	assert.Equal(t, 3.0, b.At(0).Pos.Lat)

	// Index 0 and out-of-range indices are no-ops.
	b.PruneBefore(0)
	assert.Equal(t, 3, b.Len())
	b.PruneBefore(7)
	assert.Equal(t, 3, b.Len())
}

func TestBufferClear(t *testing.T) {
	var b Buffer
	b.Push(mkSample(1, time.Now()))
	b.Clear()
	assert.Equal(t, 0, b.Len())
}
