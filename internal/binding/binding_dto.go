package binding

type CreateBindingRequest struct {
	AssistantID string `json:"assistant_id" binding:"required,uuid"`
	DesignerID  string `json:"designer_id" binding:"required,uuid"`
}

type BindingResponse struct {
	ID          string `json:"id"`
	StoreID     string `json:"store_id"`
	AssistantID string `json:"assistant_id"`
	DesignerID  string `json:"designer_id"`
	Active      bool   `json:"active"`
}
