package mpsc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gofunnel/pkg/common/validation"
	"github.com/vnykmshr/gofunnel/pkg/metrics"
)

// NewWithMetrics creates a new channel with metrics enabled. The name labels
// every metric the channel emits, so each channel in a process should use a
// distinct name.
func NewWithMetrics[T any](name string) (*Sender[T], *Receiver[T], error) {
	// Use a separate registry for each metrics-enabled channel to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics[T](DefaultConfig(), name, config)
}

// NewWithConfigAndMetrics creates a new channel with custom config and metrics.
// Metric updates are chained onto the config hooks, running after any hooks
// the caller installed.
func NewWithConfigAndMetrics[T any](config Config, name string, metricsConfig metrics.Config) (*Sender[T], *Receiver[T], error) {
	if !metricsConfig.Enabled {
		return NewWithConfig[T](config)
	}

	if err := validation.ValidateNotEmpty("mpsc", "name", name); err != nil {
		return nil, nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil && metricsConfig.Registry != prometheus.DefaultRegisterer {
		// Create custom registry if provided; the default registerer is
		// already bound to DefaultRegistry.
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	tx, rx, err := NewWithConfig[T](instrument(config, name, registry))
	if err != nil {
		return nil, nil, err
	}

	registry.OpenSenders.WithLabelValues(name).Set(1)

	return tx, rx, nil
}

// instrument chains metric updates onto the hooks of config, preserving any
// hooks the caller installed.
func instrument(config Config, name string, registry *metrics.Registry) Config {
	userOnSend := config.OnSend
	config.OnSend = func() {
		if userOnSend != nil {
			userOnSend()
		}
		registry.SendTotal.WithLabelValues(name).Inc()
		registry.Depth.WithLabelValues(name).Inc()
	}

	userOnRecv := config.OnRecv
	config.OnRecv = func() {
		if userOnRecv != nil {
			userOnRecv()
		}
		registry.RecvTotal.WithLabelValues(name).Inc()
		registry.Depth.WithLabelValues(name).Dec()
	}

	userOnRecvWait := config.OnRecvWait
	config.OnRecvWait = func(d time.Duration) {
		if userOnRecvWait != nil {
			userOnRecvWait(d)
		}
		registry.RecvWaitTime.WithLabelValues(name).Observe(d.Seconds())
	}

	userOnSenders := config.OnSenders
	config.OnSenders = func(n int) {
		if userOnSenders != nil {
			userOnSenders(n)
		}
		registry.OpenSenders.WithLabelValues(name).Set(float64(n))
	}

	userOnClose := config.OnClose
	config.OnClose = func() {
		if userOnClose != nil {
			userOnClose()
		}
		registry.CloseTotal.WithLabelValues(name).Inc()
	}

	return config
}
