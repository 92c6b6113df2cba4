// Package metrics collects Prometheus metrics for derived-value caches,
// callback registries and shared context channels, and serves them over
// HTTP.
//
// Store dispatches are measured by middleware.Prometheus; this package
// covers the pieces that have no middleware chain and report through
// observer hooks instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/statecore/pkg/reactive"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "statecore").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry receives the collectors and is what Handler serves.
	// Default: a new registry.
	Registry *prometheus.Registry
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Collector holds the cache, callback and context metrics.
type Collector struct {
	registry *prometheus.Registry

	memoLookups   *prometheus.CounterVec
	callbackWraps *prometheus.CounterVec
	contextWrites *prometheus.CounterVec
	watchers      *prometheus.GaugeVec
}

// New creates a Collector and registers its metrics.
func New(opts ...Option) *Collector {
	config := Config{Namespace: "statecore"}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(config.Registry)
	return &Collector{
		registry: config.Registry,

		memoLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "memo_lookups_total",
			Help:        "Derived value lookups by result (hit, miss)",
			ConstLabels: config.ConstLabels,
		}, []string{"cell", "result"}),

		callbackWraps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "callback_wraps_total",
			Help:        "Callback wraps by result (reused, reissued)",
			ConstLabels: config.ConstLabels,
		}, []string{"callback", "result"}),

		contextWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "context_changes_total",
			Help:        "Committed changes of shared context values",
			ConstLabels: config.ConstLabels,
		}, []string{"channel"}),

		watchers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "context_watched_providers",
			Help:        "Providers currently watched by the collector",
			ConstLabels: config.ConstLabels,
		}, []string{"channel"}),
	}
}

// Registry returns the registry the collector registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// MemoObserver returns a hook for memo.WithObserver that counts lookups of
// the named cell.
func (c *Collector) MemoObserver(cell string) func(hit bool) {
	hits := c.memoLookups.WithLabelValues(cell, "hit")
	misses := c.memoLookups.WithLabelValues(cell, "miss")
	return func(hit bool) {
		if hit {
			hits.Inc()
		} else {
			misses.Inc()
		}
	}
}

// CallbackObserver returns a hook for callback.Slot.Observe that counts
// wraps of the named callback.
func (c *Collector) CallbackObserver(name string) func(reissued bool) {
	reused := c.callbackWraps.WithLabelValues(name, "reused")
	reissued := c.callbackWraps.WithLabelValues(name, "reissued")
	return func(again bool) {
		if again {
			reissued.Inc()
		} else {
			reused.Inc()
		}
	}
}

// RegistryObserver returns a hook for callback.Registry.Observe; the
// registry key becomes the callback label.
func (c *Collector) RegistryObserver() func(key string, reissued bool) {
	return func(key string, reissued bool) {
		result := "reused"
		if reissued {
			result = "reissued"
		}
		c.callbackWraps.WithLabelValues(key, result).Inc()
	}
}

// Subscribable is anything that notifies after each change of its value;
// context providers and handles qualify.
type Subscribable interface {
	Subscribe(fn func()) reactive.Cleanup
}

// WatchChannel counts every change notified by p under the channel label.
// The returned cleanup stops watching.
func (c *Collector) WatchChannel(channel string, p Subscribable) reactive.Cleanup {
	changes := c.contextWrites.WithLabelValues(channel)
	watched := c.watchers.WithLabelValues(channel)

	unsubscribe := p.Subscribe(changes.Inc)
	watched.Inc()

	done := false
	return func() {
		if done {
			return
		}
		done = true
		unsubscribe()
		watched.Dec()
	}
}
