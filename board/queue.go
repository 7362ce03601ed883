package board

// QueueLen is the number of upcoming pieces kept in the preview.
const QueueLen = 3

// Queue is the fixed lookahead of upcoming descriptors. Index 0 is next.
type Queue struct {
	items [QueueLen]Descriptor
	rng   Randomizer
}

// NewQueue fills a queue with QueueLen fresh descriptors drawn from rng.
func NewQueue(rng Randomizer) Queue {
	q := Queue{rng: rng}
	for i := range q.items {
		q.items[i] = NewDescriptor(rng)
	}
	return q
}

// Items returns the queued descriptors, next first.
func (q *Queue) Items() [QueueLen]Descriptor {
	return q.items
}

// Peek returns the next descriptor without consuming it.
func (q *Queue) Peek() Descriptor {
	return q.items[0]
}

// Advance consumes and returns the front descriptor, shifts the rest forward
// and appends a freshly drawn one.
func (q *Queue) Advance() Descriptor {
	front := q.items[0]
	copy(q.items[:], q.items[1:])
	q.items[QueueLen-1] = NewDescriptor(q.rng)
	return front
}
