package core

import (
	"log"
	"math/rand"
	"time"
)

// FeedLoop drives the feed at a base interval plus a random per-tick
// jitter. The irregular cadence is deliberate: real position feeds do not
// arrive on a metronome, and the viewer's delay estimation has to cope.
type FeedLoop struct {
	server   *Server
	interval time.Duration
	jitter   time.Duration
	rng      *rand.Rand
	stopChan chan struct{}
}

func NewFeedLoop(server *Server, interval, jitter time.Duration, seed int64) *FeedLoop {
	return &FeedLoop{
		server:   server,
		interval: interval,
		jitter:   jitter,
		rng:      rand.New(rand.NewSource(seed)),
		stopChan: make(chan struct{}),
	}
}

func (f *FeedLoop) Run() {
	log.Printf("[feed] loop started (interval %s, jitter up to %s)", f.interval, f.jitter)

	last := time.Now()
	timer := time.NewTimer(f.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-f.stopChan:
			log.Println("[feed] loop stopped")
			return
		case now := <-timer.C:
			f.server.step(now.Sub(last))
			last = now
			timer.Reset(f.nextDelay())
		}
	}
}

func (f *FeedLoop) Stop() {
	close(f.stopChan)
}

func (f *FeedLoop) nextDelay() time.Duration {
	if f.jitter <= 0 {
		return f.interval
	}
	return f.interval + time.Duration(f.rng.Int63n(int64(f.jitter)))
}
