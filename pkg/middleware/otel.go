package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/statecore/pkg/features/store"
)

const defaultTracerName = "statecore"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "statecore").
	TracerName string

	// TracerProvider supplies the tracer. Default: otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// StoreName is recorded as the statecore.store attribute.
	StoreName string

	// Filter determines which actions to trace.
	// If nil, all actions are traced.
	Filter func(action any) bool

	// AttributeExtractor adds custom attributes for an action.
	AttributeExtractor func(action any) []attribute.KeyValue

	// Context returns the parent context for each span.
	// Default: context.Background.
	Context func() context.Context

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithSpanStoreName sets the statecore.store span attribute.
func WithSpanStoreName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.StoreName = name
	}
}

// WithActionFilter sets a filter function for actions.
func WithActionFilter(filter func(action any) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(action any) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// WithParentContext sets the function that supplies each span's parent
// context.
func WithParentContext(fn func() context.Context) OTelOption {
	return func(c *OTelConfig) {
		c.Context = fn
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		StoreName:  "store",
		Context:    context.Background,
	}
}

// OpenTelemetry creates a middleware that wraps every transition in a span.
//
// The span is named "statecore.dispatch <action>" and carries the store
// name, the action name and, once the transition returns, whether the state
// changed. A panic inside the chain is recorded on the span and re-raised.
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. Configure it in main() before dispatching:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry[A any](opts ...OTelOption) store.Middleware[A] {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	config.tracer = tp.Tracer(config.TracerName)

	return func(next store.Transition[A]) store.Transition[A] {
		return func(action A) (changed bool) {
			if config.Filter != nil && !config.Filter(action) {
				return next(action)
			}

			name := store.ActionName(action)
			attrs := []attribute.KeyValue{
				attribute.String("statecore.store", config.StoreName),
				attribute.String("statecore.action", name),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(action)...)
			}

			_, span := config.tracer.Start(
				config.Context(),
				"statecore.dispatch "+name,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			defer func() {
				if r := recover(); r != nil {
					err := panicError(r)
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
					panic(r)
				}
			}()

			changed = next(action)
			span.SetAttributes(
				attribute.Bool("statecore.changed", changed),
				attribute.String("statecore.outcome", outcomeOf(changed)),
			)
			span.SetStatus(codes.Ok, "")
			return changed
		}
	}
}
