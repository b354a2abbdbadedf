/*
Package gofunnel provides an unbounded multi-producer, single-consumer channel
for funneling values from many goroutines into one, with fan-in helpers and
optional Prometheus instrumentation.

Channel Core (pkg/mpsc):
  - Sender: cloneable producer handles with automatic close tracking
  - Receiver: blocking, non-blocking, timed and context-aware receives
  - metrics: per-channel Prometheus counters, gauges and histograms

Fan-In Helpers (pkg/fanin):
  - Merge: funnel existing Go channels into a single receiver
  - Collect, ForEach: terminal helpers for draining a receiver

Observability (pkg/metrics):
  - shared Prometheus registry for instrumented channels

Example usage:

	import "github.com/vnykmshr/gofunnel/pkg/mpsc"

	tx, rx := mpsc.New[string]()

	go func(tx *mpsc.Sender[string]) {
		defer tx.Close()
		tx.Send("hello") // each producer owns a cloned handle
	}(tx.Clone())
	tx.Close()

	for {
		v, ok := rx.Recv()
		if !ok {
			break // all senders closed, queue drained
		}
		fmt.Println(v)
	}
*/
package gofunnel
