package mpsc

import "sync/atomic"

// Sender is a writer handle for a channel. Handles may be cloned and used
// from any number of goroutines. Each handle must be closed when its owner
// is done producing; the channel closes once the last handle is closed.
type Sender[T any] struct {
	st     *state[T]
	closed int32
}

// Send appends v to the channel and wakes the receiver. The channel is
// unbounded, so Send never blocks. It returns ErrClosed if this handle was
// already closed or the receiver has been released.
func (s *Sender[T]) Send(v T) error {
	if atomic.LoadInt32(&s.closed) != 0 {
		return ErrClosed
	}

	st := s.st
	st.mu.Lock()
	if st.rxGone {
		st.mu.Unlock()
		return ErrClosed
	}
	st.queue = append(st.queue, v)
	if st.config.OnSend != nil {
		st.config.OnSend()
	}
	st.mu.Unlock()

	st.cond.Signal()
	return nil
}

// Clone returns a new sender handle for the same channel, incrementing the
// open-sender count. Clone panics when called on a closed handle.
func (s *Sender[T]) Clone() *Sender[T] {
	if atomic.LoadInt32(&s.closed) != 0 {
		panic("mpsc: Clone called on closed Sender")
	}

	st := s.st
	st.mu.Lock()
	if st.closed {
		st.mu.Unlock()
		panic("mpsc: Clone called on closed Sender")
	}
	st.senders++
	if st.config.OnSenders != nil {
		st.config.OnSenders(st.senders)
	}
	st.mu.Unlock()

	return &Sender[T]{st: st}
}

// Close marks this handle as closed and decrements the open-sender count.
// When the count reaches zero the channel closes: buffered values remain
// receivable, and the receiver observes end-of-stream once they are
// drained. Close is idempotent per handle and always returns nil.
func (s *Sender[T]) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil // Already closed
	}

	st := s.st
	st.mu.Lock()
	st.senders--
	last := st.senders == 0
	if last {
		st.closed = true
	}
	if st.config.OnSenders != nil {
		st.config.OnSenders(st.senders)
	}
	if last && st.config.OnClose != nil {
		st.config.OnClose()
	}
	st.mu.Unlock()

	if last {
		// Wake unconditionally: a receiver blocked on an empty queue must
		// observe the close.
		st.cond.Broadcast()
	}
	return nil
}

// IsClosed returns true if this handle was closed.
func (s *Sender[T]) IsClosed() bool {
	return atomic.LoadInt32(&s.closed) != 0
}
