package override

type UpsertOverrideRequest struct {
	DesignerID string  `json:"designer_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Demand     float64 `json:"demand" binding:"min=0"`
}

type OverrideResponse struct {
	ID         string  `json:"id"`
	DesignerID string  `json:"designer_id"`
	Date       string  `json:"date"`
	Demand     float64 `json:"demand"`
}
