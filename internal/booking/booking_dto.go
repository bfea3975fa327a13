package booking

type CreateBookingRequest struct {
	RookieID  string `json:"rookie_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	RookieID  string `json:"rookie_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
