// Package middleware provides store middlewares for logging, metrics and
// tracing.
//
// Every middleware wraps a store transition: it sees the dispatched action,
// runs the rest of the chain, and observes whether the state changed. None
// of them can alter the transition's result.
//
//	s := todo.NewStore()
//	s.Use(
//	    middleware.OpenTelemetry[todo.Action](),
//	    middleware.Prometheus[todo.Action](middleware.WithStoreName("todo")),
//	    middleware.Logging[todo.Action](logger),
//	)
//
// # Prometheus Metrics
//
// The Prometheus middleware collects:
//   - statecore_dispatches_total: dispatches by store, action and outcome
//     (changed, unchanged, panic)
//   - statecore_transition_duration_seconds: time spent in the transition
//     chain by store and action
//
// Expose them with promhttp on the registry passed to WithRegistry.
//
// # OpenTelemetry
//
// The OpenTelemetry middleware starts one span per dispatch, named after the
// action, with the store name and outcome as attributes. It uses the global
// tracer provider unless WithTracerProvider is given.
package middleware
