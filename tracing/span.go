package tracing

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span covers one gate resolution.
type Span struct {
	span trace.Span
}

// Decided records the policy outcome.
func (s *Span) Decided(approved bool, reason string) {
	if s == nil {
		return
	}
	s.span.SetAttributes(attribute.Bool(AttrApproved, approved))
	if reason != "" {
		s.span.SetAttributes(attribute.String(AttrReason, reason))
	}
}

// End closes the span with an error status when err is set, OK otherwise.
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

// Panicked closes the span for a resolution that panicked with v. The
// caller is expected to re-panic.
func (s *Span) Panicked(v interface{}) {
	if s == nil {
		return
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("%v", v)
	}
	s.End(fmt.Errorf("panic: %w", err))
}
