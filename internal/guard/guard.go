// Package guard wraps a holdablequeue.Queue behind a mutex for shared
// use. The core structure is single-owner on purpose; this package is
// the external-synchronization layer callers reach for when producers,
// consumers and reviewers touch the same queue.
//
// Besides the locked pass-through operations, a guarded queue exposes
// PrepareHold, the two-phase hook consumed by the group-hold
// orchestrator: it places a hold on the current front element and hands
// back an idempotent release callback, so a coordinator can roll back
// partially placed group holds without losing track of what it touched.
package guard

import (
	"context"
	"errors"
	"sync"

	holdablequeue "github.com/timzifer/holdable_queue"
)

// ErrNothingToHold is returned by PrepareHold on an empty queue.
var ErrNothingToHold = errors.New("guard: queue has no element to hold")

// ErrFrontAlreadyHeld is returned by PrepareHold when the front element
// already carries a hold.
var ErrFrontAlreadyHeld = errors.New("guard: front element is already on hold")

// Queue is a holdablequeue.Queue protected by a mutex.
type Queue[T any] struct {
	mu sync.Mutex
	q  *holdablequeue.Queue[T]
}

// New creates a guarded queue. Options are passed through to the
// underlying holdablequeue constructor.
func New[T any](options ...holdablequeue.Option[T]) *Queue[T] {
	return &Queue[T]{q: holdablequeue.NewQueue(options...)}
}

// Enqueue appends item at the logical tail.
func (g *Queue[T]) Enqueue(item T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.q.Enqueue(item)
}

// Dequeue removes and returns the first element that is not on hold.
func (g *Queue[T]) Dequeue() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Dequeue()
}

// Peek returns the front element without removing it, held or not.
func (g *Queue[T]) Peek() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Peek()
}

// Len returns the number of stored elements, held ones included.
func (g *Queue[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Len()
}

// HoldCount returns the number of positions currently on hold.
func (g *Queue[T]) HoldCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.HoldCount()
}

// Hold places a hold on the front element.
func (g *Queue[T]) Hold() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Hold()
}

// ReleaseHold removes the hold on the front element, if any.
func (g *Queue[T]) ReleaseHold() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.ReleaseHold()
}

// Clear resets the queue and drops all holds.
func (g *Queue[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.q.Clear()
}

// Snapshot returns a copy of the live elements in logical order.
func (g *Queue[T]) Snapshot() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Snapshot()
}

// PrepareHold places a hold on the current front element and returns a
// callback that releases it again. The callback is idempotent. It fails
// with ErrNothingToHold on an empty queue, with ErrFrontAlreadyHeld when
// the front is already held, and with the context error when ctx is
// done.
//
// While the hold is in place, Dequeue keeps skipping the held element,
// which therefore stays at position 0 until the callback runs.
func (g *Queue[T]) PrepareHold(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.q.IsEmpty() {
		return nil, ErrNothingToHold
	}
	if !g.q.Hold() {
		return nil, ErrFrontAlreadyHeld
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			g.q.ReleaseHold()
		})
	}
	return release, nil
}
