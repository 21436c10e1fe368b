package dataflow

import (
	"context"
	"testing"
	"time"
)

// S9 from the spec: a queue at capacity blocks on the next Push until a
// Pop makes room, and preserves FIFO order across the block.
func TestBoundedQueue_PushBlocksAtCapacityThenUnblocks(t *testing.T) {
	q := NewBoundedQueue[int](2)
	ctx := context.Background()

	if err := q.Push(ctx, 1); err != nil {
		t.Fatalf("Push(1) error = %v", err)
	}
	if err := q.Push(ctx, 2); err != nil {
		t.Fatalf("Push(2) error = %v", err)
	}

	pushed := make(chan error, 1)
	go func() {
		pushed <- q.Push(ctx, 3)
	}()

	select {
	case <-pushed:
		t.Fatal("Push(3) returned before the queue had room")
	case <-time.After(20 * time.Millisecond):
	}

	got, err := q.Pop(ctx)
	if err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Pop() = %d, want 1", got)
	}

	select {
	case err := <-pushed:
		if err != nil {
			t.Fatalf("blocked Push(3) error = %v", err)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Push(3) never unblocked after a Pop freed a slot")
	}

	for _, want := range []int{2, 3} {
		got, err := q.Pop(ctx)
		if err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
		if got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}
}

func TestBoundedQueue_PushRespectsCancelledContext(t *testing.T) {
	q := NewBoundedQueue[int](1)
	if err := q.Push(context.Background(), 1); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := q.Push(ctx, 2); err == nil {
		t.Error("Push() on a full queue with an expiring context returned a nil error")
	}
}

func TestBoundedQueue_PopRespectsCancelledContext(t *testing.T) {
	q := NewBoundedQueue[int](1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := q.Pop(ctx); err == nil {
		t.Error("Pop() on an empty queue with an expiring context returned a nil error")
	}
}

func TestBoundedQueue_TryPopNonBlocking(t *testing.T) {
	q := NewBoundedQueue[int](1)
	if _, ok := q.TryPop(); ok {
		t.Error("TryPop() on an empty queue reported ok=true")
	}

	q.Push(context.Background(), 42)
	got, ok := q.TryPop()
	if !ok || got != 42 {
		t.Errorf("TryPop() = (%d, %v), want (42, true)", got, ok)
	}
}

func TestBoundedQueue_PopCheckedDrainsThenReportsClosed(t *testing.T) {
	q := NewBoundedQueue[int](4)
	ctx := context.Background()

	q.Push(ctx, 1)
	q.Push(ctx, 2)
	q.Close()

	for _, want := range []int{1, 2} {
		got, open, err := q.PopChecked(ctx)
		if err != nil {
			t.Fatalf("PopChecked() error = %v", err)
		}
		if !open {
			t.Fatalf("PopChecked() open = false before queue drained")
		}
		if got != want {
			t.Errorf("PopChecked() = %d, want %d", got, want)
		}
	}

	_, open, err := q.PopChecked(ctx)
	if err != nil {
		t.Fatalf("PopChecked() error = %v", err)
	}
	if open {
		t.Error("PopChecked() open = true after queue closed and drained")
	}
}
