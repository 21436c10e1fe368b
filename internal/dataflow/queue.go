package dataflow

import "context"

// BoundedQueue is a fixed-capacity FIFO channel wrapped with
// context-aware Push/Pop, the idiomatic Go rendering of the original
// tool's condvar-guarded BlockingQueue: a channel send/receive already
// blocks exactly the way pushBlocking/popBlocking do, and wrapping each
// in a select against ctx.Done() adds cancellable blocking without any
// hand-rolled locking.
type BoundedQueue[T any] struct {
	items chan T
}

// NewBoundedQueue creates a queue that can hold up to capacity items
// before Push blocks.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	return &BoundedQueue[T]{items: make(chan T, capacity)}
}

// Push blocks until there is room in the queue or ctx is done.
func (q *BoundedQueue[T]) Push(ctx context.Context, item T) error {
	select {
	case q.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop blocks until an item is available or ctx is done.
func (q *BoundedQueue[T]) Pop(ctx context.Context) (T, error) {
	select {
	case item := <-q.items:
		return item, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Close closes the underlying channel. Callers must ensure no further
// Push calls happen after Close; a Pop draining the remaining buffered
// items after Close still succeeds, only returning the zero value once
// the channel is both closed and empty — callers distinguish that case
// with PopChecked, whose open result is false once the queue is closed
// and drained; Pop and TryPop never report "closed" on their own.
func (q *BoundedQueue[T]) Close() {
	close(q.items)
}

// TryPush performs a non-blocking push, reporting ok=false if the queue
// is full. Useful for a secondary consumer (a live display) that should
// drop frames under backpressure rather than slow down the producer.
func (q *BoundedQueue[T]) TryPush(item T) (ok bool) {
	select {
	case q.items <- item:
		return true
	default:
		return false
	}
}

// TryPop performs a non-blocking pop, reporting ok=false if the queue
// is empty (or closed and drained).
func (q *BoundedQueue[T]) TryPop() (item T, ok bool) {
	select {
	case item, ok = <-q.items:
		return item, ok
	default:
		var zero T
		return zero, false
	}
}

// PopChecked blocks until an item is available, ctx is done, or the
// queue has been Closed and fully drained. open is false only in the
// latter case, letting a consumer goroutine end its read loop without
// polling Len/TryPop in a spin wait.
func (q *BoundedQueue[T]) PopChecked(ctx context.Context) (item T, open bool, err error) {
	select {
	case item, open = <-q.items:
		return item, open, nil
	case <-ctx.Done():
		var zero T
		return zero, true, ctx.Err()
	}
}

// Len reports how many items are currently buffered.
func (q *BoundedQueue[T]) Len() int {
	return len(q.items)
}
