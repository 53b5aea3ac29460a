package async

import "context"

// Future holds the eventual result of a task submitted to a Pool. Completion
// resolves either a value or an error; waiting never blocks a pool worker,
// only the caller that chooses to wait.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// NewFuture creates an unresolved future
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed creates a future already resolved with the given result
func Completed[T any](value T, err error) *Future[T] {
	f := NewFuture[T]()
	f.complete(value, err)
	return f
}

// Wait blocks until the future resolves or the context expires
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future resolves
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) complete(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Submit schedules fn on the pool and returns a future for its result.
// An error raised by fn resolves the future as failed; Submit itself
// never fails the caller.
func Submit[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	if err := p.Submit(func() {
		f.complete(fn())
	}); err != nil {
		var zero T
		f.complete(zero, err)
	}
	return f
}

// Combine2 waits for two independent futures and returns both results.
// It is a join, not a race: both must resolve, and the first failure
// observed fails the combination with no partial result.
func Combine2[A, B any](ctx context.Context, fa *Future[A], fb *Future[B]) (A, B, error) {
	a, errA := fa.Wait(ctx)
	b, errB := fb.Wait(ctx)
	if errA != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, errA
	}
	if errB != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, errB
	}
	return a, b, nil
}
