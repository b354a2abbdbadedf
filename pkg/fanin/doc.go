/*
Package fanin merges many source channels into a single consumer stream.

Merge builds on the mpsc channel: each source gets its own forwarding
goroutine holding a cloned sender handle, and the merged channel closes
exactly when the last source is exhausted. The consumer sees one ordinary
receiver and never has to coordinate a select over a variable number of
sources.

Basic Usage:

	a := make(chan int)
	b := make(chan int)

	rx := fanin.Merge(a, b)

	go produce(a)
	go produce(b)

	for {
		v, ok := rx.Recv()
		if !ok {
			break // all sources closed and drained
		}
		handle(v)
	}

Terminal Helpers:

Collect and ForEach drain a receiver to end of stream, for short pipelines
and tests:

	values := fanin.Collect(fanin.Merge(a, b))

	fanin.ForEach(rx, func(v int) {
		fmt.Println(v)
	})

Ordering:

Values from one source arrive in that source's order. No order is defined
across sources; interleaving depends on goroutine scheduling.
*/
package fanin
