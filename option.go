package sure

import (
	"log/slog"

	"github.com/viant/sure/policy"
	"github.com/viant/sure/tracing"
)

// Option configures a Resolver.
type Option func(r *Resolver)

// WithPolicy sets the default policy, used when the context carries none.
func WithPolicy(p *policy.Policy) Option {
	return func(r *Resolver) { r.policy = p }
}

// WithAsk sets the function consulted in ask mode. It is attached to a copy
// of the resolver policy, creating an ask-mode policy when none was set.
func WithAsk(ask policy.AskFunc) Option {
	return func(r *Resolver) {
		p := policy.Policy{Mode: policy.ModeAsk}
		if r.policy != nil {
			p = *r.policy
		}
		p.Ask = ask
		r.policy = &p
	}
}

// WithLogger sets the logger receiving resolution records at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer records every resolution as a span on tracer. Resolver.Shutdown
// shuts the tracer down.
func WithTracer(tracer *tracing.Tracer) Option {
	return func(r *Resolver) { r.tracer = tracer }
}
