package dialog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Future is the result of a dialog running in the background. It resolves
// exactly once, when the dialog has been dismissed or has failed.
type Future[T any] struct {
	id    string
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}
}

// rejected returns a future that has already failed with err
func rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.resolve(zero, err)
	return f
}

func (f *Future[T]) resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// ID identifies the future in log output
func (f *Future[T]) ID() string {
	return f.id
}

// Done is closed once the future has resolved
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future resolves
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await is like Wait but gives up when ctx is done. Giving up does not close
// the dialog; it keeps running until the user dismisses it.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
