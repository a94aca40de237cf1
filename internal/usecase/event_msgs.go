package usecase

// Published to RabbitMQ when an order is placed; consumed by the
// notification handler.
type PlacedMsg struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Total       int64  `json:"total"`
	ItemCount   int    `json:"itemCount"`
	City        string `json:"city"`
}

// Sent by the payment pipeline on Kafka.
type PaymentStatusChangedMsg struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // e.g. "PAID", "FAILED"
}
