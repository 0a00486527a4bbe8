package policy

import (
	"context"
	"slices"
	"strings"
)

// Resolution modes.
const (
	ModeAsk  = "ask"  // ask before every action
	ModeAuto = "auto" // confirm automatically (default)
	ModeDeny = "deny" // decline everything
)

// Reasons reported when an action is declined without asking.
const (
	ReasonBlocked  = "blocked by policy"
	ReasonDenied   = "denied by policy"
	ReasonNoAsk    = "ask mode without ask function"
	ReasonRejected = "rejected"
)

// AskFunc is invoked when Mode==ask. Returning true confirms the action.
// Implementations may mutate the policy, for example switching to ModeAuto
// after the first confirmation.
type AskFunc func(
	ctx context.Context,
	action string, // the gated operation name
	args map[string]interface{}, // optional details, may be nil
	p *Policy,
) bool

// Policy holds confirmation settings for a caller.
//
// A nil *Policy confirms everything.
type Policy struct {
	Mode      string   // ask / auto / deny (default = auto)
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
	Ask       AskFunc  // used only when Mode==ask
}

// Decide returns whether action should be confirmed and, when not, why.
func (p *Policy) Decide(ctx context.Context, action string, args map[string]interface{}) (bool, string) {
	if p == nil {
		return true, ""
	}
	if !p.IsAllowed(action) {
		return false, ReasonBlocked
	}
	switch strings.ToLower(p.Mode) {
	case ModeDeny:
		return false, ReasonDenied
	case ModeAsk:
		if p.Ask == nil {
			return false, ReasonNoAsk
		}
		if !p.Ask(ctx, action, args, p) {
			return false, ReasonRejected
		}
	}
	return true, ""
}

// IsAllowed reports whether action passes the block and allow lists. Names
// match case-insensitively; an empty allow list admits everything not blocked.
func (p *Policy) IsAllowed(action string) bool {
	if p == nil {
		return true
	}
	if listed(p.BlockList, action) {
		return false
	}
	return len(p.AllowList) == 0 || listed(p.AllowList, action)
}

func listed(names []string, action string) bool {
	return slices.ContainsFunc(names, func(name string) bool {
		return strings.EqualFold(name, action)
	})
}

type contextKey struct{}

// WithPolicy returns a copy of ctx carrying p; Resolve prefers it over the
// resolver's own policy.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the policy carried by ctx or nil.
func FromContext(ctx context.Context) *Policy {
	p, _ := ctx.Value(contextKey{}).(*Policy)
	return p
}
