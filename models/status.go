package models

// Moving request statuses. A request starts at pending; approval and
// rejection are admin decisions, and completed is terminal.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// statusTransitions lists the allowed status changes. Rejected and
// completed are both terminal: a rejected request cannot be reopened,
// and once a move has happened there is nothing left to decide on it.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusCompleted, StatusRejected},
	StatusRejected:  {},
	StatusCompleted: {},
}

func IsValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether a request may move from one status to
// another. Re-applying the current status is always allowed (the admin
// screen re-submits freely), so only actual changes are checked against
// the table.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NotificationForStatus returns the message sent to the request owner for
// a given status, or "" when the status change is silent.
func NotificationForStatus(status string) string {
	switch status {
	case StatusApproved:
		return "Your moving request has been approved. Please start preparing."
	case StatusRejected:
		return "Your moving request has been rejected. Please consider changing the date or details."
	}
	return ""
}
