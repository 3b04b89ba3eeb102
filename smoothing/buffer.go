package smoothing

// BufferCap bounds how many samples are retained per entity. Interpolation
// only ever needs the pair bracketing the render time, so anything beyond a
// handful of in-flight samples is dead weight.
const BufferCap = 10

// Buffer holds the most recent confirmed samples for one entity, ordered
// by arrival time. It never rejects a sample; malformed input is the
// caller's problem.
type Buffer struct {
	samples []Sample
}

// Push appends a sample. Samples arrive in ingestion order, so the buffer
// stays sorted without searching. The oldest entry is dropped once the cap
// is exceeded.
func (b *Buffer) Push(s Sample) {
	b.samples = append(b.samples, s)
	if len(b.samples) > BufferCap {
		b.samples = b.samples[1:]
	}
}

// PruneBefore drops all samples strictly preceding index i. The sample at
// i survives as the anchor of the current bracket.
func (b *Buffer) PruneBefore(i int) {
	if i > 0 && i < len(b.samples) {
		b.samples = b.samples[i:]
	}
}

func (b *Buffer) Len() int { return len(b.samples) }

func (b *Buffer) At(i int) Sample { return b.samples[i] }

// Latest returns the newest sample. The buffer must not be empty.
func (b *Buffer) Latest() Sample { return b.samples[len(b.samples)-1] }

func (b *Buffer) Clear() { b.samples = b.samples[:0] }
