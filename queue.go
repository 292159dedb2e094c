package holdablequeue

// minCapacity is the buffer size allocated by the first growth of an
// empty queue. Subsequent growths double the capacity.
const minCapacity = 8

// Queue implements a FIFO queue over a growable ring buffer in which
// individual logical positions can be put on hold. A held element keeps
// its place, stays visible to Peek and Len, and is skipped by Dequeue
// until the hold is released.
//
// A Queue is single-owner: it must not be used from multiple goroutines
// without external synchronization. The zero value is an empty queue
// ready for use.
type Queue[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
	held  holdSet
}

// NewQueue creates an empty queue. Options can pre-allocate the buffer
// or seed the queue with initial elements.
func NewQueue[T any](options ...Option[T]) *Queue[T] {
	var cfg config[T]
	for _, opt := range options {
		opt(&cfg)
	}

	q := &Queue[T]{}
	if cfg.capacity > 0 {
		q.buf = make([]T, cfg.capacity)
	}
	for _, v := range cfg.initial {
		q.Enqueue(v)
	}
	return q
}

// Len returns the number of elements currently stored in the queue,
// held ones included.
func (q *Queue[T]) Len() int {
	return q.count
}

// Cap returns the current capacity of the backing buffer.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Enqueue appends item as the new logical tail, growing the backing
// buffer when it is full. Growth relocates the elements but changes
// neither their order nor their hold state.
func (q *Queue[T]) Enqueue(item T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = item
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.count++
}

// Dequeue removes and returns the first element whose logical position
// is not on hold, scanning positions 0, 1, 2, … in order. It returns
// false without mutating the queue when the queue is empty or every
// element is held. Removing an element shifts the elements behind it one
// step toward the front and renumbers the remaining holds so each marker
// keeps tracking the element it was placed on.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	pos, ok := q.held.firstFree(q.count)
	if !ok {
		return zero, false
	}
	return q.removeAt(pos), true
}

// Peek returns the element at logical position 0 without removing it.
// Hold state is ignored: a held front element is still returned.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	return q.buf[q.head], true
}

// Clear resets the queue to the empty state and drops all holds. The
// allocated capacity is retained for reuse.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.buf[q.index(i)] = zero
	}
	q.head = 0
	q.tail = 0
	q.count = 0
	q.held.clear()
}

// HoldAt marks the element at the given logical position as held,
// excluding it from Dequeue. It returns false without mutation when the
// position is out of range or already held.
func (q *Queue[T]) HoldAt(position int) bool {
	if position < 0 || position >= q.count {
		return false
	}
	return q.held.add(position)
}

// Hold marks the current front element as held. Hold() == HoldAt(0).
func (q *Queue[T]) Hold() bool {
	return q.HoldAt(0)
}

// ReleaseHoldAt removes the hold at the given logical position,
// reporting whether a hold was present. Releasing a position that is not
// held is a no-op.
func (q *Queue[T]) ReleaseHoldAt(position int) bool {
	return q.held.remove(position)
}

// ReleaseHold removes the hold on the front position.
// ReleaseHold() == ReleaseHoldAt(0).
func (q *Queue[T]) ReleaseHold() bool {
	return q.ReleaseHoldAt(0)
}

// ReleaseAllHolds drops every hold marker unconditionally.
func (q *Queue[T]) ReleaseAllHolds() {
	q.held.clear()
}

// IsHeldAt reports whether the element at the given logical position is
// currently held.
func (q *Queue[T]) IsHeldAt(position int) bool {
	return q.held.contains(position)
}

// IsHeld reports whether the front element is currently held.
func (q *Queue[T]) IsHeld() bool {
	return q.IsHeldAt(0)
}

// HoldCount returns the number of positions currently on hold.
func (q *Queue[T]) HoldCount() int {
	return q.held.len()
}

// HeldPositions returns the held logical positions in ascending order,
// or nil when no hold is in place. The returned slice is a copy.
func (q *Queue[T]) HeldPositions() []int {
	return q.held.snapshot()
}

// Snapshot returns a copy of the live elements in logical order for
// inspection/testing, or nil when the queue is empty.
func (q *Queue[T]) Snapshot() []T {
	if q.count == 0 {
		return nil
	}
	out := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[q.index(i)]
	}
	return out
}

// index translates a logical position into a physical buffer index.
func (q *Queue[T]) index(pos int) int {
	i := q.head + pos
	if n := len(q.buf); i >= n {
		i -= n
	}
	return i
}

// removeAt removes the element at logical position pos. The elements
// behind it move one slot toward the front (removing the front
// degenerates to advancing head), the vacated slot is zeroed so the GC
// can reclaim whatever T references, and the hold set is renumbered in
// the same step.
func (q *Queue[T]) removeAt(pos int) T {
	var zero T

	idx := q.index(pos)
	value := q.buf[idx]

	if pos == 0 {
		q.buf[idx] = zero
		q.head++
		if q.head == len(q.buf) {
			q.head = 0
		}
	} else {
		for i := pos + 1; i < q.count; i++ {
			from := q.index(i)
			q.buf[idx] = q.buf[from]
			idx = from
		}
		q.buf[idx] = zero
		q.tail = idx
	}

	q.count--
	if q.count == 0 {
		q.head = 0
		q.tail = 0
	}
	q.held.renumberAfterRemove(pos)
	return value
}

// grow reallocates the backing buffer to max(minCapacity, 2*cap) and
// copies the live elements in logical order to the start of the new
// buffer. Hold positions are logical and therefore unaffected.
func (q *Queue[T]) grow() {
	newCap := len(q.buf) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	next := make([]T, newCap)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
	q.tail = q.count
}
