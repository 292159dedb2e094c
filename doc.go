// Package holdablequeue provides a generic FIFO queue in which any
// logical position can be put on hold. A held element is excluded from
// Dequeue but keeps counting toward Len, stays visible to Peek and keeps
// its place in the arrival order.
//
// Holds mark slots, not element identities: a hold placed at position p
// refers to whatever element currently sits p steps behind the front.
// When an element ahead of a held position is removed, the hold is
// renumbered downward together with its element, so the marker keeps
// tracking the element it was placed on until it is released or that
// element is removed. Dequeue scans positions from the front and removes
// the first one that is not held; when every element is held it reports
// an empty result without mutating the queue.
//
// Storage is a growable ring buffer: amortized O(1) appends, capacity
// doubling on demand, and physical relocation that is invisible to
// logical order and hold state. Dequeue costs up to O(n) for the shift
// that closes the gap left by a mid-queue removal.
//
// A Queue is deliberately single-owner and carries no locking. Callers
// that share a queue across goroutines wrap it behind an external lock;
// internal/guard provides such a wrapper together with the two-phase
// hold hook used by the group-hold orchestrator.
package holdablequeue
