package mpsc

import (
	"errors"
	"sync"
	"time"

	"github.com/vnykmshr/gofunnel/pkg/common/validation"
)

// ErrClosed is returned when sending on a closed handle or on a channel
// whose receiver has been released. It is also the terminal result of
// TryRecv, RecvTimeout and RecvContext once the channel is closed and
// fully drained.
var ErrClosed = errors.New("channel is closed")

// ErrTimeout is returned by RecvTimeout when no value arrives before the
// deadline. It is never used for end-of-stream, so callers can retry on
// ErrTimeout without re-checking channel state.
var ErrTimeout = errors.New("receive timed out")

// Config holds configuration for a channel.
//
// The hooks observe channel activity for instrumentation. OnSend, OnSenders
// and OnClose are invoked while the channel lock is held and must be fast
// and must not call back into the channel. OnRecv and OnRecvWait run on the
// receiver's goroutine.
type Config struct {
	// InitialCapacity pre-allocates queue capacity for the expected burst
	// size. Zero means no pre-allocation.
	InitialCapacity int

	// OnSend is called after each value is enqueued.
	OnSend func()

	// OnRecv is called after each value is delivered to the receiver.
	OnRecv func()

	// OnRecvWait is called after a receive that had to block, with the
	// time spent blocked.
	OnRecvWait func(time.Duration)

	// OnSenders is called after the number of open sender handles changes,
	// with the new count.
	OnSenders func(n int)

	// OnClose is called exactly once, when the last sender handle closes.
	OnClose func()
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 0,
	}
}

// state is the core shared by all handles of one channel: the FIFO queue,
// the open-sender bookkeeping and the condition variable the receiver
// waits on. Once closed is set it is never unset, and closed is only set
// when senders reaches zero.
type state[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond

	queue   []T  // pending values, oldest first
	senders int  // open sender handles
	closed  bool // no sender handle remains open
	rxGone  bool // the receiver was released

	config Config
}

// New creates a channel and returns its first sender handle together with
// its single receiver handle. The channel closes when every sender handle
// has been closed; buffered values stay receivable until drained.
func New[T any]() (*Sender[T], *Receiver[T]) {
	return newChannel[T](DefaultConfig())
}

// NewWithConfig creates a channel with the specified configuration.
func NewWithConfig[T any](config Config) (*Sender[T], *Receiver[T], error) {
	if err := validation.ValidateNonNegative("mpsc", "initialCapacity", config.InitialCapacity); err != nil {
		return nil, nil, err
	}
	s, r := newChannel[T](config)
	return s, r, nil
}

func newChannel[T any](config Config) (*Sender[T], *Receiver[T]) {
	st := &state[T]{
		senders: 1,
		config:  config,
	}
	if config.InitialCapacity > 0 {
		st.queue = make([]T, 0, config.InitialCapacity)
	}
	st.cond = sync.NewCond(&st.mu)
	return &Sender[T]{st: st}, &Receiver[T]{st: st}
}
