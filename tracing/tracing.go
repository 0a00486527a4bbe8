package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this module.
const TracerName = "github.com/viant/sure"

// ResolveSpanName names the span covering one gate resolution.
const ResolveSpanName = "sure.resolve"

// Resolution span attributes.
const (
	AttrAction   = "sure.action"
	AttrRequest  = "sure.request"
	AttrDeferred = "sure.deferred"
	AttrApproved = "sure.approved"
	AttrReason   = "sure.reason"
)

// Tracer emits resolution spans through its own tracer provider.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	output   io.Closer
}

// New creates a Tracer exporting with stdouttrace. Spans are appended to
// outputFile, or written to os.Stdout when it is empty.
func New(serviceName, serviceVersion, outputFile string) (*Tracer, error) {
	var w io.Writer = os.Stdout
	var file *os.File
	if outputFile != "" {
		var err error
		if file, err = os.OpenFile(outputFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		w = file
	}
	ret, err := newStdout(serviceName, serviceVersion, w)
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, err
	}
	if file != nil {
		ret.output = file
	}
	return ret, nil
}

func newStdout(serviceName, serviceVersion string, w io.Writer) (*Tracer, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
	}
	return NewWithExporter(serviceName, serviceVersion, exporter)
}

// NewWithExporter creates a Tracer for any SpanExporter (OTLP, Jaeger,
// in-memory ...). Spans are exported synchronously when they end.
func NewWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) (*Tracer, error) {
	if exporter == nil {
		return nil, errors.New("span exporter was nil")
	}
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace resource: %w", err)
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	return &Tracer{provider: provider, tracer: provider.Tracer(TracerName)}, nil
}

// Shutdown flushes the provider and closes the output file, if any.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	err := t.provider.Shutdown(ctx)
	if t.output != nil {
		err = errors.Join(err, t.output.Close())
	}
	return err
}

// StartResolve opens the span for resolving the gate of action. A nil
// Tracer returns a nil Span; all Span methods accept nil.
func (t *Tracer) StartResolve(ctx context.Context, action, requestID string, deferred bool) (context.Context, *Span) {
	if t == nil {
		return ctx, nil
	}
	ctx, span := t.tracer.Start(ctx, ResolveSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(AttrAction, action),
			attribute.String(AttrRequest, requestID),
			attribute.Bool(AttrDeferred, deferred),
		))
	return ctx, &Span{span: span}
}
