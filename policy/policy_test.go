package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/sure/policy"
)

func TestPolicy_Decide(t *testing.T) {
	yes := func(context.Context, string, map[string]interface{}, *policy.Policy) bool { return true }
	no := func(context.Context, string, map[string]interface{}, *policy.Policy) bool { return false }

	type testCase struct {
		name           string
		policy         *policy.Policy
		action         string
		expectApproved bool
		expectReason   string
	}

	tests := []testCase{
		{name: "nil policy approves", policy: nil, action: "db.drop", expectApproved: true},
		{name: "auto mode approves", policy: &policy.Policy{Mode: policy.ModeAuto}, action: "db.drop", expectApproved: true},
		{name: "empty mode approves", policy: &policy.Policy{}, action: "db.drop", expectApproved: true},
		{name: "deny mode declines", policy: &policy.Policy{Mode: policy.ModeDeny}, action: "db.drop", expectReason: policy.ReasonDenied},
		{name: "ask approved", policy: &policy.Policy{Mode: policy.ModeAsk, Ask: yes}, action: "db.drop", expectApproved: true},
		{name: "ask rejected", policy: &policy.Policy{Mode: policy.ModeAsk, Ask: no}, action: "db.drop", expectReason: policy.ReasonRejected},
		{name: "ask without func", policy: &policy.Policy{Mode: "ASK"}, action: "db.drop", expectReason: policy.ReasonNoAsk},
		{name: "blocked wins over auto", policy: &policy.Policy{BlockList: []string{"DB.Drop"}}, action: "db.drop", expectReason: policy.ReasonBlocked},
		{name: "not on allow list", policy: &policy.Policy{AllowList: []string{"db.read"}}, action: "db.drop", expectReason: policy.ReasonBlocked},
		{name: "on allow list", policy: &policy.Policy{AllowList: []string{"db.drop"}}, action: "db.drop", expectApproved: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			approved, reason := tc.policy.Decide(context.Background(), tc.action, nil)
			assert.EqualValues(t, tc.expectApproved, approved)
			assert.EqualValues(t, tc.expectReason, reason)
		})
	}
}

func TestPolicy_AskCanSwitchMode(t *testing.T) {
	asked := 0
	p := &policy.Policy{
		Mode: policy.ModeAsk,
		Ask: func(_ context.Context, _ string, _ map[string]interface{}, p *policy.Policy) bool {
			asked++
			p.Mode = policy.ModeAuto
			return true
		},
	}
	for i := 0; i < 3; i++ {
		approved, _ := p.Decide(context.Background(), "fs.remove", nil)
		assert.True(t, approved)
	}
	assert.EqualValues(t, 1, asked)
}

func TestContext(t *testing.T) {
	assert.Nil(t, policy.FromContext(context.Background()))
	p := &policy.Policy{Mode: policy.ModeDeny}
	ctx := policy.WithPolicy(context.Background(), p)
	assert.Same(t, p, policy.FromContext(ctx))
}
