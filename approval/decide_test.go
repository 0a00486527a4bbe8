package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/sure/approval"
	"github.com/viant/sure/internal/clock"
	"github.com/viant/sure/internal/idgen"
)

func TestDecide(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	prevNow, prevID := clock.NowFunc, idgen.NewFunc
	clock.NowFunc = func() time.Time { return now }
	idgen.NewFunc = func() string { return "req-1" }
	defer func() {
		clock.NowFunc, idgen.NewFunc = prevNow, prevID
	}()

	type testCase struct {
		name     string
		fn       approval.DecisionFunc
		expected *approval.Decision
	}

	tests := []testCase{
		{
			name:     "nil func approves",
			fn:       nil,
			expected: &approval.Decision{ID: "req-1", Approved: true, DecidedAt: now},
		},
		{
			name:     "auto approve",
			fn:       approval.AutoApprove(),
			expected: &approval.Decision{ID: "req-1", Approved: true, DecidedAt: now},
		},
		{
			name:     "auto reject",
			fn:       approval.AutoReject("too risky"),
			expected: &approval.Decision{ID: "req-1", Approved: false, Reason: "too risky", DecidedAt: now},
		},
		{
			name: "reason dropped on approval",
			fn: func(context.Context, *approval.Request) (bool, string) {
				return true, "ignored"
			},
			expected: &approval.Decision{ID: "req-1", Approved: true, DecidedAt: now},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := approval.NewRequest("db.drop", map[string]interface{}{"table": "users"})
			assert.EqualValues(t, &approval.Request{
				ID:        "req-1",
				Action:    "db.drop",
				Args:      map[string]interface{}{"table": "users"},
				CreatedAt: now,
			}, req)
			assert.EqualValues(t, tc.expected, approval.Decide(context.Background(), req, tc.fn))
		})
	}
}
