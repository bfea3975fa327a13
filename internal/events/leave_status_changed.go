package events

import "time"

const LeaveStatusChangedTopic = "salon.leave.status.v1"

const (
	LeaveRequested = "leave.requested"
	LeaveApproved  = "leave.approved"
	LeaveRejected  = "leave.rejected"
	LeaveCanceled  = "leave.canceled"
)

// LeaveStatusChangedEvent is emitted through the outbox on every leave
// mutation. AffectedIDs lists every record the transition touched, mirrored
// requests included, so downstream notifiers can fan out once per person.
type LeaveStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	LeaveID     string    `json:"leave_id"`
	StoreID     string    `json:"store_id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	AffectedIDs []string  `json:"affected_ids,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
