package emit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTel implements Emitter by turning each merge-point event into an
// immediately-ended OpenTelemetry span, named after the event kind and
// tagged with the merge point and participating state identities. This
// gives merge activity the same trace-based visibility a hosting engine
// would give its own instruction-dispatch spans.
type OTel struct {
	tracer trace.Tracer
}

// NewOTel creates an OTel emitter from a tracer, typically
// otel.Tracer("xsearch").
func NewOTel(tracer trace.Tracer) *OTel {
	return &OTel{tracer: tracer}
}

// Emit starts and immediately ends a span for event.
func (o *OTel) Emit(event Event) {
	_, span := o.tracer.Start(context.Background(), event.Msg)
	o.annotate(span, event)
	span.End()
}

// EmitBatch emits one span per event, in order.
func (o *OTel) EmitBatch(ctx context.Context, events []Event) error {
	for _, e := range events {
		_, span := o.tracer.Start(ctx, e.Msg)
		o.annotate(span, e)
		span.End()
	}
	return nil
}

func (o *OTel) annotate(span trace.Span, event Event) {
	span.SetAttributes(
		attribute.Int("xsearch.merge_point", event.MergePoint),
		attribute.String("xsearch.state_id", event.StateID),
	)
	if event.OtherStateID != "" {
		span.SetAttributes(attribute.String("xsearch.other_state_id", event.OtherStateID))
	}
	if event.Msg == "merge_failed" {
		span.SetStatus(codes.Error, "merge failed")
		span.RecordError(fmt.Errorf("merge failed at instruction %d", event.MergePoint))
	}
	for k, v := range event.Meta {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case int64:
			span.SetAttributes(attribute.Int64(k, val))
		case float64:
			span.SetAttributes(attribute.Float64(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
}

// Flush forces the configured tracer provider to export pending spans, if
// it supports ForceFlush (the SDK provider does; the global no-op provider
// does not).
func (o *OTel) Flush(ctx context.Context) error {
	tp := otel.GetTracerProvider()
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := tp.(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}
