package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/jarpath/internal/core/ports"
)

// InstrumentationName names the tracer used for every span.
const InstrumentationName = "go.trai.ch/jarpath"

// Provider owns the SDK tracer provider.
type Provider struct {
	tp     *sdktrace.TracerProvider
	tracer *OTelTracer
}

// NewProvider creates a tracer provider with the given span processors attached.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		tp:     tp,
		tracer: NewOTelTracer(tp.Tracer(InstrumentationName)),
	}
}

// Tracer returns the ports.Tracer backed by this provider.
func (p *Provider) Tracer() ports.Tracer {
	return p.tracer
}

// Shutdown flushes and stops every span processor.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
