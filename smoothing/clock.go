package smoothing

// Consumer receives the smoothed output once per frame. Anything that
// visually places an object qualifies: a map marker, a follow camera.
type Consumer interface {
	Apply(pos Position, heading float64)
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc func(pos Position, heading float64)

func (f ConsumerFunc) Apply(pos Position, heading float64) { f(pos, heading) }

// FrameDriver schedules a callback to run once per display frame. The
// returned cancel releases the registration; after cancel returns the
// callback is never invoked again.
type FrameDriver interface {
	Schedule(tick func()) (cancel func())
}

// RenderClock pumps one Engine into one Consumer every frame. Several
// clocks may share an engine — the marker and the follow camera both
// query the same buffer — but each owns its own frame registration, and
// that registration must be released on every teardown path.
type RenderClock struct {
	engine   *Engine
	consumer Consumer
	cancel   func()
}

func NewRenderClock(engine *Engine, consumer Consumer) *RenderClock {
	return &RenderClock{engine: engine, consumer: consumer}
}

// Start acquires a frame registration from the driver. Starting a running
// clock is a no-op.
func (rc *RenderClock) Start(d FrameDriver) {
	if rc.cancel != nil {
		return
	}
	rc.cancel = d.Schedule(rc.tick)
}

// Stop releases the frame registration. Idempotent.
func (rc *RenderClock) Stop() {
	if rc.cancel != nil {
		rc.cancel()
		rc.cancel = nil
	}
}

// Running reports whether the clock holds a frame registration.
func (rc *RenderClock) Running() bool { return rc.cancel != nil }

func (rc *RenderClock) tick() {
	if pos, heading, ok := rc.engine.Sample(rc.engine.clock.Now()); ok {
		rc.consumer.Apply(pos, heading)
	}
}

// TickDriver is a FrameDriver pumped by the host loop: the viewer calls
// Tick once per ebiten Update, tests call it by hand against a fake clock.
type TickDriver struct {
	ticks  map[int]func()
	nextID int
}

func NewTickDriver() *TickDriver {
	return &TickDriver{ticks: make(map[int]func())}
}

func (d *TickDriver) Schedule(tick func()) (cancel func()) {
	id := d.nextID
	d.nextID++
	d.ticks[id] = tick
	return func() { delete(d.ticks, id) }
}

// Tick runs every scheduled callback once. Registration order is not
// significant; consumers are independent.
func (d *TickDriver) Tick() {
	for _, fn := range d.ticks {
		fn()
	}
}

// Scheduled returns the number of live registrations.
func (d *TickDriver) Scheduled() int { return len(d.ticks) }
