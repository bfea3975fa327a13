package domain

// Staff roles. The taxonomy is fixed: designers serve their own guests,
// assistants and rookies supply support capacity, managers administer the
// store.
const (
	RoleDesigner  = "DESIGNER"
	RoleAssistant = "ASSISTANT"
	RoleRookie    = "ROOKIE"
	RoleManager   = "MANAGER"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleDesigner, RoleAssistant, RoleRookie, RoleManager:
		return true
	default:
		return false
	}
}
