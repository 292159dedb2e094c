package holdablequeue

type config[T any] struct {
	capacity int
	initial  []T
}

// Option configures a Queue during construction.
type Option[T any] func(*config[T])

// WithCapacity pre-allocates the backing buffer for n elements. The
// queue still starts empty and keeps growing on demand once n is
// exceeded. Non-positive values leave the queue unallocated.
func WithCapacity[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		cfg.capacity = n
	}
}

// WithInitial seeds the queue with values in enqueue order.
func WithInitial[T any](values ...T) Option[T] {
	return func(cfg *config[T]) {
		cfg.initial = append(cfg.initial[:0], values...)
	}
}
