package mpsc

import (
	"context"
	"sync/atomic"
	"time"
)

// Receiver is the single reader handle for a channel. Values arrive in the
// order they were enqueued. A Receiver is not safe for concurrent use: all
// methods must be called from one goroutine at a time, except Close, which
// may be called from any goroutine to release a blocked receive.
type Receiver[T any] struct {
	st     *state[T]
	cache  []T // values already claimed from the shared queue
	closed int32
}

// Recv returns the next value in FIFO order, blocking while the channel is
// empty but still open. The second result is false only once the channel
// has closed and every buffered value has been delivered.
func (r *Receiver[T]) Recv() (T, bool) {
	var zero T
	if atomic.LoadInt32(&r.closed) != 0 {
		return zero, false
	}
	if len(r.cache) > 0 {
		return r.pop(), true
	}

	st := r.st
	var waited time.Duration

	st.mu.Lock()
	if len(st.queue) == 0 && !st.closed && !st.rxGone {
		start := time.Now()
		for len(st.queue) == 0 && !st.closed && !st.rxGone {
			st.cond.Wait()
		}
		waited = time.Since(start)
	}
	if len(st.queue) == 0 {
		st.mu.Unlock()
		r.noteWait(waited)
		return zero, false
	}
	r.cache, st.queue = st.queue, nil
	st.mu.Unlock()

	r.noteWait(waited)
	return r.pop(), true
}

// TryRecv returns the next value without blocking. It returns (zero, false,
// nil) when the channel is empty but still open, and (zero, false,
// ErrClosed) once the channel is closed and drained or the receiver has
// been released.
func (r *Receiver[T]) TryRecv() (T, bool, error) {
	var zero T
	if atomic.LoadInt32(&r.closed) != 0 {
		return zero, false, ErrClosed
	}
	if len(r.cache) > 0 {
		return r.pop(), true, nil
	}

	st := r.st
	st.mu.Lock()
	if len(st.queue) == 0 {
		terminal := st.closed || st.rxGone
		st.mu.Unlock()
		if terminal {
			return zero, false, ErrClosed
		}
		return zero, false, nil
	}
	r.cache, st.queue = st.queue, nil
	st.mu.Unlock()

	return r.pop(), true, nil
}

// RecvTimeout returns the next value, waiting at most d for one to arrive.
// It returns ErrTimeout when the wait expires and ErrClosed once the
// channel is closed and drained. ErrTimeout means no data yet, never
// end-of-stream, so the call can simply be retried. A non-positive d polls
// once without blocking.
func (r *Receiver[T]) RecvTimeout(d time.Duration) (T, error) {
	var zero T
	if atomic.LoadInt32(&r.closed) != 0 {
		return zero, ErrClosed
	}
	if len(r.cache) > 0 {
		return r.pop(), nil
	}

	st := r.st
	var waited time.Duration

	st.mu.Lock()
	if d > 0 && len(st.queue) == 0 && !st.closed && !st.rxGone {
		timedOut := false
		timer := time.AfterFunc(d, func() {
			st.mu.Lock()
			timedOut = true
			st.mu.Unlock()
			st.cond.Broadcast()
		})
		start := time.Now()
		for len(st.queue) == 0 && !st.closed && !st.rxGone && !timedOut {
			st.cond.Wait()
		}
		waited = time.Since(start)
		timer.Stop()
	}
	if len(st.queue) == 0 {
		terminal := st.closed || st.rxGone
		st.mu.Unlock()
		r.noteWait(waited)
		if terminal {
			return zero, ErrClosed
		}
		return zero, ErrTimeout
	}
	r.cache, st.queue = st.queue, nil
	st.mu.Unlock()

	r.noteWait(waited)
	return r.pop(), nil
}

// RecvContext returns the next value, waiting until ctx is done. It returns
// ctx.Err() on cancellation and ErrClosed once the channel is closed and
// drained. A value that is already buffered is delivered regardless of ctx.
func (r *Receiver[T]) RecvContext(ctx context.Context) (T, error) {
	var zero T
	if atomic.LoadInt32(&r.closed) != 0 {
		return zero, ErrClosed
	}
	if len(r.cache) > 0 {
		return r.pop(), nil
	}

	st := r.st
	var waited time.Duration

	st.mu.Lock()
	if len(st.queue) == 0 && !st.closed && !st.rxGone {
		cancelled := false
		stop := context.AfterFunc(ctx, func() {
			st.mu.Lock()
			cancelled = true
			st.mu.Unlock()
			st.cond.Broadcast()
		})
		start := time.Now()
		for len(st.queue) == 0 && !st.closed && !st.rxGone && !cancelled {
			st.cond.Wait()
		}
		waited = time.Since(start)
		stop()
	}
	if len(st.queue) == 0 {
		terminal := st.closed || st.rxGone
		st.mu.Unlock()
		r.noteWait(waited)
		if terminal {
			return zero, ErrClosed
		}
		return zero, ctx.Err()
	}
	r.cache, st.queue = st.queue, nil
	st.mu.Unlock()

	r.noteWait(waited)
	return r.pop(), nil
}

// Close releases the receiver. Buffered values are discarded and subsequent
// sends fail with ErrClosed. Close is idempotent and always returns nil.
// A Close from another goroutine releases a receive blocked in Recv,
// RecvTimeout or RecvContext. Releasing the receiver is optional; an
// abandoned channel is reclaimed by the garbage collector once all handles
// are gone.
func (r *Receiver[T]) Close() error {
	if !atomic.CompareAndSwapInt32(&r.closed, 0, 1) {
		return nil // Already closed
	}

	st := r.st
	st.mu.Lock()
	st.rxGone = true
	st.queue = nil
	st.mu.Unlock()

	st.cond.Broadcast()
	return nil
}

// Len returns the number of undelivered values, counting both the shared
// queue and the receiver's local cache.
func (r *Receiver[T]) Len() int {
	if atomic.LoadInt32(&r.closed) != 0 {
		return 0
	}
	st := r.st
	st.mu.Lock()
	n := len(st.queue)
	st.mu.Unlock()
	return n + len(r.cache)
}

// Senders returns the number of currently open sender handles.
func (r *Receiver[T]) Senders() int {
	st := r.st
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.senders
}

// pop removes and returns the head of the local cache, reporting the
// delivery to the OnRecv hook.
func (r *Receiver[T]) pop() T {
	v := r.cache[0]
	var zero T
	r.cache[0] = zero // Clear reference
	r.cache = r.cache[1:]
	if len(r.cache) == 0 {
		r.cache = nil
	}
	if r.st.config.OnRecv != nil {
		r.st.config.OnRecv()
	}
	return v
}

// noteWait reports a blocked receive to the OnRecvWait hook.
func (r *Receiver[T]) noteWait(waited time.Duration) {
	if waited > 0 && r.st.config.OnRecvWait != nil {
		r.st.config.OnRecvWait(waited)
	}
}
