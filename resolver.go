package sure

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/sure/approval"
	"github.com/viant/sure/policy"
	"github.com/viant/sure/tracing"
)

// Resolver confirms or declines gates according to a policy.
type Resolver struct {
	policy  *policy.Policy
	logger  *slog.Logger
	tracer  *tracing.Tracer
	tracing TracingConfig
}

// Policy returns the resolver default policy.
func (r *Resolver) Policy() *policy.Policy {
	return r.policy
}

// Config returns the serialisable settings of r. The policy AskFunc and
// caller supplied tracers are not represented.
func (r *Resolver) Config() *Config {
	return &Config{
		Policy:  policy.ToConfig(r.policy),
		Tracing: r.tracing,
	}
}

// Shutdown flushes and releases the resolver tracer.
func (r *Resolver) Shutdown(ctx context.Context) error {
	return r.tracer.Shutdown(ctx)
}

// New creates a Resolver. Without options every gate is confirmed.
func New(options ...Option) *Resolver {
	ret := &Resolver{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// NewFromConfig creates a Resolver from cfg; options are applied after the
// config so they take precedence.
func NewFromConfig(cfg *Config, options ...Option) (*Resolver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var opts []Option
	if cfg.Policy != nil {
		opts = append(opts, WithPolicy(policy.FromConfig(cfg.Policy)))
	}
	if t := cfg.Tracing; t.Enabled {
		tracer, err := tracing.New(t.ServiceName, t.ServiceVersion, t.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to set up tracing: %w", err)
		}
		opts = append(opts, WithTracer(tracer), func(r *Resolver) { r.tracing = t })
	}
	return New(append(opts, options...)...), nil
}

// Resolve decides action under the policy found in ctx, or the resolver's
// own policy, then confirms g when approved and declines it otherwise.
// Declined gates yield the zero value and an error wrapping ErrDeclined.
// A nil resolver confirms everything.
func Resolve[T any](ctx context.Context, r *Resolver, action string, g *Gate[T]) (T, *approval.Decision, error) {
	return ResolveRequest(ctx, r, approval.NewRequest(action, nil), g)
}

// ResolveRequest is Resolve with caller supplied request details; Args are
// passed to the policy AskFunc. A nil or already resolved gate panics before
// the policy is consulted.
func ResolveRequest[T any](ctx context.Context, r *Resolver, req *approval.Request, g *Gate[T]) (result T, decision *approval.Decision, err error) {
	if g == nil || g.Resolved() {
		panic(fmt.Errorf("resolve %s: %w", req.Action, ErrAlreadyResolved))
	}
	if r == nil {
		r = New()
	}
	var span *tracing.Span
	if r.tracer != nil {
		ctx, span = r.tracer.StartResolve(ctx, req.Action, req.ID, g.Deferred())
		defer func() {
			if v := recover(); v != nil {
				span.Panicked(v)
				panic(v)
			}
			span.End(err)
		}()
	}

	p := policy.FromContext(ctx)
	if p == nil {
		p = r.policy
	}
	decision = approval.Decide(ctx, req, func(ctx context.Context, req *approval.Request) (bool, string) {
		return p.Decide(ctx, req.Action, req.Args)
	})
	span.Decided(decision.Approved, decision.Reason)
	r.logger.DebugContext(ctx, "gate resolved",
		"request_id", req.ID,
		"action", req.Action,
		"approved", decision.Approved,
		"reason", decision.Reason)

	if !decision.Approved {
		g.Decline()
		return result, decision, fmt.Errorf("%w: %s: %s", ErrDeclined, req.Action, decision.Reason)
	}
	return g.Confirm(), decision, nil
}
