package leave

type CreateLeaveRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Date   string `json:"date" binding:"required"`
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Source    string  `json:"source"`
	MirrorOf  *string `json:"mirror_of,omitempty"`
	CreatedBy string  `json:"created_by"`
}

// CreateLeaveResponse reports the created request plus any mirrored assistant
// requests spawned through active bindings.
type CreateLeaveResponse struct {
	Leave   LeaveResponse   `json:"leave"`
	Mirrors []LeaveResponse `json:"mirrors,omitempty"`
}

// CascadeResponse reports a status transition and the exact set of record ids
// it touched, the parent included.
type CascadeResponse struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	AffectedIDs []string `json:"affected_ids"`
}
