package sure

import "errors"

var (
	// ErrAlreadyResolved is the panic value (wrapped) raised when a gate is
	// confirmed or declined more than once.
	ErrAlreadyResolved = errors.New("gate already resolved")
	// ErrDeclined is returned by Resolve when the policy rejects an action.
	ErrDeclined = errors.New("action declined")
)
