package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/jarpath/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor and reports finished spans to the logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(describeSpan(s))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// describeSpan renders "<name> took <duration> [k=v ...]" with attributes sorted by key.
func describeSpan(s sdktrace.ReadOnlySpan) string {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	parts := make([]string, 0, len(s.Attributes())+1)
	for _, kv := range s.Attributes() {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	slices.Sort(parts)

	if s.Status().Code == codes.Error {
		parts = append(parts, "error="+s.Status().Description)
	}

	msg := fmt.Sprintf("%s took %s", s.Name(), elapsed)
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}
	return msg
}
