package approval

import (
	"context"

	"github.com/viant/sure/internal/clock"
)

// DecisionFunc decides what to do with a request.
// Return (true,  "") to approve
//
//	(false, "…") to reject with reason.
type DecisionFunc func(ctx context.Context, r *Request) (approved bool, reason string)

// Decide applies fn to r. A nil fn approves.
func Decide(ctx context.Context, r *Request, fn DecisionFunc) *Decision {
	approved, reason := true, ""
	if fn != nil {
		approved, reason = fn(ctx, r)
	}
	if approved {
		reason = ""
	}
	return &Decision{
		ID:        r.ID,
		Approved:  approved,
		Reason:    reason,
		DecidedAt: clock.Now(),
	}
}

// AutoApprove approves every request.
func AutoApprove() DecisionFunc {
	return func(context.Context, *Request) (bool, string) { return true, "" }
}

// AutoReject rejects every request with the given reason.
func AutoReject(reason string) DecisionFunc {
	return func(context.Context, *Request) (bool, string) { return false, reason }
}
