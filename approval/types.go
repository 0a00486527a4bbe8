package approval

import (
	"time"

	"github.com/viant/sure/internal/clock"
	"github.com/viant/sure/internal/idgen"
)

// Request describes a gated action awaiting a decision.
type Request struct {
	ID        string                 `json:"id"`
	Action    string                 `json:"action"`         // gated operation name
	Args      map[string]interface{} `json:"args,omitempty"` // optional details
	CreatedAt time.Time              `json:"createdAt"`
}

// Decision represents the outcome for a Request.
type Decision struct {
	ID        string    `json:"id"` // same as request.ID
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

// NewRequest creates a request with a fresh ID.
func NewRequest(action string, args map[string]interface{}) *Request {
	return &Request{
		ID:        idgen.New(),
		Action:    action,
		Args:      args,
		CreatedAt: clock.Now(),
	}
}
