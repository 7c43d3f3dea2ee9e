package invoice

type LineRequest struct {
	ID        uint `json:"id"`
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type SaveRequest struct {
	Lines []LineRequest `json:"invoice_details" binding:"required"`
}
