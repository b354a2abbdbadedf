// Package metrics provides Prometheus instrumentation for gofunnel components.
//
// This package enables monitoring and observability for gofunnel's channels
// through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Channel traffic (values enqueued and delivered)
//   - Channel lifecycle (open sender handles, closes)
//   - Buffering (current depth)
//   - Receiver latency (time spent blocked waiting for data)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Channel with metrics
//	tx, rx, err := mpsc.NewWithMetrics[Event]("ingest")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	tx, rx, err := mpsc.NewWithConfigAndMetrics[Event](
//		mpsc.DefaultConfig(),
//		"ingest",
//		config,
//	)
//
// # Available Metrics
//
//   - gofunnel_channel_send_total: Total number of values enqueued
//   - gofunnel_channel_recv_total: Total number of values delivered to the receiver
//   - gofunnel_channel_close_total: Total number of channels that have closed
//   - gofunnel_channel_depth: Number of undelivered values currently buffered
//   - gofunnel_channel_open_senders: Number of open sender handles
//   - gofunnel_channel_recv_wait_duration_seconds: Time the receiver spent blocked waiting for data
//
// # Labels
//
// All channel metrics carry a single label:
//
//   - channel_name: User-provided name for the channel instance
//
// # Configuration
//
// Metrics can be configured globally or per-channel:
//
//	config := metrics.Config{
//		Enabled:   true,                         // Enable/disable metrics
//		Registry:  prometheus.DefaultRegisterer, // Custom registry
//		Namespace: "myapp",                      // Override default "gofunnel"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Additional labels
//	}
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
