// Package metrics provides Prometheus instrumentation for gofunnel components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gofunnel components.
type Registry struct {
	// Channel Metrics
	SendTotal    *prometheus.CounterVec
	RecvTotal    *prometheus.CounterVec
	CloseTotal   *prometheus.CounterVec
	Depth        *prometheus.GaugeVec
	OpenSenders  *prometheus.GaugeVec
	RecvWaitTime *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by gofunnel components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		SendTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "send_total",
				Help:      "Total number of values enqueued",
			},
			[]string{"channel_name"},
		),

		RecvTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "recv_total",
				Help:      "Total number of values delivered to the receiver",
			},
			[]string{"channel_name"},
		),

		CloseTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "close_total",
				Help:      "Total number of channels that have closed",
			},
			[]string{"channel_name"},
		),

		Depth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "depth",
				Help:      "Number of undelivered values currently buffered",
			},
			[]string{"channel_name"},
		),

		OpenSenders: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "open_senders",
				Help:      "Number of open sender handles",
			},
			[]string{"channel_name"},
		),

		RecvWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gofunnel",
				Subsystem: "channel",
				Name:      "recv_wait_duration_seconds",
				Help:      "Time the receiver spent blocked waiting for data",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel_name"},
		),
	}
}
