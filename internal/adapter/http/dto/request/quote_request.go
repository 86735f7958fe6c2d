package request

type QuoteRequest struct {
	ServiceID string `json:"service_id" binding:"required" example:"ssd-upgrade"`
	Urgency   string `json:"urgency" example:"same-day"`
}
