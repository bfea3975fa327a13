package domain

// EnforceRequest asks whether a salon role may perform an action on a
// resource. Roles are the fixed staff taxonomy (DESIGNER, ASSISTANT, ROOKIE,
// MANAGER) carried in the auth token.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
