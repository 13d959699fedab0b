// Package async runs store operations in the background and hands back a
// result/error union the caller can await or ignore.
package async

import (
	"context"
	"fmt"
)

// Task is a single background operation producing a T or an error
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn on a new goroutine. A panic inside fn is turned into the
// task's error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		t.value, t.err = fn(ctx)
	}()
	return t
}

// Done is closed once the task has finished
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await blocks until the task finishes or ctx is done. Giving up on ctx does
// not stop the task itself.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Ready reports whether the task has finished
func (t *Task[T]) Ready() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
