package models

// Result is the outcome of an operation surfaced directly to the caller.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CheckoutSummary is the read-only view produced when proceeding to
// checkout. It is recomputed on every request and never cached.
type CheckoutSummary struct {
	Items           []CartLine `json:"items"`
	TotalInfo       Totals     `json:"total_info"`
	DeliveryAddress string     `json:"delivery_address"`
}

// ConfirmationResult is the outcome of confirming an order.
type ConfirmationResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	OrderID           string `json:"order_id,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}
