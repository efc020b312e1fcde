// Package approvals provides the moderation workflow for vendor-submitted
// skills: listing, approving, rejecting, and removing entries while
// keeping the local page cache consistent without a full reload.
//
// Valid status graph:
//
//	PENDING ──► APPROVED
//	    │
//	    └─────► REJECTED
//
// APPROVED and REJECTED are terminal states.
package approvals

import "fmt"

// Status values mirror the vendor_skill status enum on the backend.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected},
	// APPROVED and REJECTED are terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown vendor skill status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by
// the state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state — no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
