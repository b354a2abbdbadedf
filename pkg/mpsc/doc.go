/*
Package mpsc provides an unbounded multiple-producer, single-consumer channel
with a deterministic close protocol.

The package implements a message channel where any number of writer handles
enqueue values concurrently and exactly one reader handle dequeues them in
FIFO order. Unlike Go's built-in channels, the channel is unbounded (sends
never block) and closing is tied to handle lifetime: the channel closes
automatically when the last sender handle is closed, and the receiver keeps
draining buffered values before it observes end-of-stream.

Core Features:

  - Sender handles that can be cloned and shared across goroutines
  - A single Receiver with blocking, non-blocking, deadline and
    context-aware receive operations
  - Drain-before-close semantics: values enqueued before the last sender
    closed are always delivered
  - End-of-stream reported as a value, distinct from timeout and error
    conditions
  - Optional hooks for instrumentation and a Prometheus-backed
    constructor (see NewWithMetrics)

Basic Usage:

Creating a channel yields the first sender and the only receiver:

	tx, rx := mpsc.New[string]()

	go func() {
		defer tx.Close()
		tx.Send("hello")
		tx.Send("world")
	}()

	for {
		v, ok := rx.Recv()
		if !ok {
			break // channel closed and drained
		}
		fmt.Println(v)
	}

Fan-In from Multiple Producers:

Each producer owns a clone of the sender and closes it when done. The
channel closes once all clones are closed, so the consumer loop terminates
without any out-of-band signal:

	tx, rx := mpsc.New[int]()

	for w := 0; w < workers; w++ {
		go func(tx *mpsc.Sender[int], id int) {
			defer tx.Close()
			for _, v := range produce(id) {
				tx.Send(v)
			}
		}(tx.Clone(), w)
	}
	tx.Close() // release the root handle

	for v, ok := rx.Recv(); ok; v, ok = rx.Recv() {
		consume(v)
	}

Lifecycle:

A channel is open while at least one sender handle is open. Closing the
last handle moves it to a draining state in which buffered values are still
delivered; once the queue is empty the receiver observes end-of-stream.
There is no transition back: a closed channel stays closed, and sending on
a closed handle returns ErrClosed.

Values sent before the last Close are never lost. The close wakes a blocked
receiver unconditionally, so a consumer waiting on an empty channel
terminates promptly instead of hanging forever.

Receive Variants:

Recv blocks until a value arrives or the channel closes. TryRecv polls:

	v, ok, err := rx.TryRecv()
	switch {
	case err != nil: // closed and drained
	case !ok:        // empty right now, try again later
	default:         // got v
	}

RecvTimeout bounds the wait. Its ErrTimeout result means "no data yet" and
is always distinct from end-of-stream, so a poll loop can retry on timeout
and stop on ErrClosed:

	for {
		v, err := rx.RecvTimeout(time.Second)
		if err == mpsc.ErrTimeout {
			continue
		}
		if err != nil {
			return // mpsc.ErrClosed
		}
		consume(v)
	}

RecvContext ties the wait to a context and returns ctx.Err() when the
context wins.

The receiver batch-drains the shared queue under a single lock acquisition
and serves subsequent calls from a local cache, which keeps the cost of a
receive low when producers are bursty.

Hooks and Metrics:

Config carries optional callbacks for instrumentation:

	tx, rx, err := mpsc.NewWithConfig[int](mpsc.Config{
		OnSend:  func() { sends.Inc() },
		OnClose: func() { log.Println("channel closed") },
	})

NewWithMetrics and NewWithConfigAndMetrics wire the same hooks to a
Prometheus registry with counters for sends, receives and closes, gauges
for depth and open senders, and a histogram of receiver wait time.

Thread Safety:

Sender handles are safe for concurrent use, and distinct handles never
contend outside the internal queue lock. The Receiver must stay confined to
one goroutine at a time; cloning it is not possible, which keeps the
single-consumer property a compile-time guarantee rather than a runtime
check. The one exception is Receiver.Close, which may be called from any
goroutine to release a receive blocked in Recv, RecvTimeout or RecvContext.

Relationship to Built-In Channels:

Use a built-in channel when bounded buffering and select support matter.
This package fits pipelines that must never block producers, want close
semantics tied to producer lifetime rather than an explicit close call by
one distinguished goroutine, and need the channel itself to carry
instrumentation.
*/
package mpsc
