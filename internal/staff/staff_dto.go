package staff

type CreateStaffRequest struct {
	Name       string   `json:"name" binding:"required"`
	Role       string   `json:"role" binding:"required,oneof=DESIGNER ASSISTANT ROOKIE MANAGER"`
	BaseDemand *float64 `json:"base_demand"`
	BaseSupply *float64 `json:"base_supply"`
}

type UpdateStaffRequest struct {
	Name       string   `json:"name" binding:"required"`
	Role       string   `json:"role" binding:"required,oneof=DESIGNER ASSISTANT ROOKIE MANAGER"`
	BaseDemand *float64 `json:"base_demand"`
	BaseSupply *float64 `json:"base_supply"`
	Active     *bool    `json:"active" binding:"required"`
}

type StaffResponse struct {
	ID         string   `json:"id"`
	StoreID    string   `json:"store_id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	BaseDemand *float64 `json:"base_demand,omitempty"`
	BaseSupply *float64 `json:"base_supply,omitempty"`
	Active     bool     `json:"active"`
}
