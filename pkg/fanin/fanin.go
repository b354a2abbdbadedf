package fanin

import (
	"github.com/vnykmshr/gofunnel/pkg/mpsc"
)

// Merge funnels every source channel into one unbounded channel and returns
// its receiver. One goroutine forwards each source; the merged channel
// closes once every source has closed and its values have been delivered.
// Merging zero sources yields an immediately closed, empty channel. A nil
// source panics.
func Merge[T any](sources ...<-chan T) *mpsc.Receiver[T] {
	tx, rx := mpsc.New[T]()
	start(tx, sources)
	return rx
}

// MergeWithConfig is Merge with channel configuration, for pre-allocation
// or hooks on the merged channel.
func MergeWithConfig[T any](config mpsc.Config, sources ...<-chan T) (*mpsc.Receiver[T], error) {
	tx, rx, err := mpsc.NewWithConfig[T](config)
	if err != nil {
		return nil, err
	}
	start(tx, sources)
	return rx, nil
}

// start spawns one forwarder per source and releases the root handle, so
// the merged channel closes exactly when the last forwarder finishes.
// Sources are checked up front: a late panic would leave the root handle
// open and the receiver blocked forever.
func start[T any](tx *mpsc.Sender[T], sources []<-chan T) {
	for _, source := range sources {
		if source == nil {
			panic("fanin: nil source channel")
		}
	}
	for _, source := range sources {
		go forward(tx.Clone(), source)
	}
	tx.Close()
}

// forward drains one source into its sender clone. Forwarding stops early
// when the receiver has been released; remaining source values are left
// unconsumed.
func forward[T any](tx *mpsc.Sender[T], source <-chan T) {
	defer tx.Close()
	for v := range source {
		if err := tx.Send(v); err != nil {
			return
		}
	}
}

// Collect drains the receiver to end of stream and returns the values in
// arrival order.
func Collect[T any](rx *mpsc.Receiver[T]) []T {
	var values []T
	for {
		v, ok := rx.Recv()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// ForEach drains the receiver to end of stream, applying action to each
// value in arrival order.
func ForEach[T any](rx *mpsc.Receiver[T], action func(T)) {
	for {
		v, ok := rx.Recv()
		if !ok {
			return
		}
		action(v)
	}
}
