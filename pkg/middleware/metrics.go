package middleware

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/statecore/pkg/features/store"
)

// Outcome label values.
const (
	OutcomeChanged   = "changed"
	OutcomeUnchanged = "unchanged"
	OutcomePanic     = "panic"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "statecore").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for transition duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// StoreName is the value of the "store" label (default: "store").
	StoreName string
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// WithStoreName sets the "store" label value.
func WithStoreName(name string) MetricsOption {
	return func(c *MetricsConfig) {
		c.StoreName = name
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "statecore",
		// Transitions are in-memory; most land well under a millisecond.
		Buckets:   []float64{.000005, .00001, .000025, .00005, .0001, .00025, .0005, .001, .005, .01},
		Registry:  prometheus.DefaultRegisterer,
		StoreName: "store",
	}
}

// Metrics holds the store metrics registered on one registry.
type Metrics struct {
	DispatchesTotal    *prometheus.CounterVec
	TransitionDuration *prometheus.HistogramVec
}

// One Metrics per registry and full configuration, so every store wired to
// the same registry with the same options shares the collectors instead of
// registering twice.
var (
	metricsMu    sync.Mutex
	metricsCache = map[metricsKey]*Metrics{}
)

type metricsKey struct {
	registry    prometheus.Registerer
	namespace   string
	subsystem   string
	constLabels string
	buckets     string
}

func keyOf(config MetricsConfig) metricsKey {
	var labels strings.Builder
	for _, name := range slices.Sorted(maps.Keys(config.ConstLabels)) {
		fmt.Fprintf(&labels, "%s=%q,", name, config.ConstLabels[name])
	}
	return metricsKey{
		registry:    config.Registry,
		namespace:   config.Namespace,
		subsystem:   config.Subsystem,
		constLabels: labels.String(),
		buckets:     fmt.Sprint(config.Buckets),
	}
}

// metricsFor returns the collectors for config. Const label values that
// differ from an earlier call register as separate series. A configuration
// the registry cannot tell apart from an earlier one (same names and const
// labels, different buckets) reuses the collectors registered first.
func metricsFor(config MetricsConfig) *Metrics {
	key := keyOf(config)

	metricsMu.Lock()
	defer metricsMu.Unlock()

	if m, ok := metricsCache[key]; ok {
		return m
	}

	m := &Metrics{
		DispatchesTotal: register(config.Registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of store dispatches by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"store", "action", "outcome"})),

		TransitionDuration: register(config.Registry, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transition_duration_seconds",
			Help:        "Time spent applying an action, in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"store", "action"})),
	}
	metricsCache[key] = m
	return m
}

// register registers c, or returns the collector already registered under
// the same descriptor. Any other registration error panics, as promauto does.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

// Prometheus creates a middleware that counts and times every transition.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	s.Use(middleware.Prometheus[todo.Action](
//	    middleware.WithRegistry(reg),
//	    middleware.WithStoreName("todo"),
//	))
func Prometheus[A any](opts ...MetricsOption) store.Middleware[A] {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	m := metricsFor(config)

	return func(next store.Transition[A]) store.Transition[A] {
		return func(action A) (changed bool) {
			name := store.ActionName(action)
			start := time.Now()

			outcome := OutcomePanic
			defer func() {
				m.TransitionDuration.WithLabelValues(config.StoreName, name).Observe(time.Since(start).Seconds())
				m.DispatchesTotal.WithLabelValues(config.StoreName, name, outcome).Inc()
			}()

			changed = next(action)
			outcome = outcomeOf(changed)
			return changed
		}
	}
}

// MetricsFor returns the collectors the Prometheus middleware registers for
// the given options, creating them if needed.
func MetricsFor(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return metricsFor(config)
}

func outcomeOf(changed bool) string {
	if changed {
		return OutcomeChanged
	}
	return OutcomeUnchanged
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
