package models

// PaymentDetails carries the structural fields of a payment method.
// Only credit cards are inspected; other methods treat this as opaque.
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// GatewayStatus is the status reported by a payment gateway.
type GatewayStatus string

const (
	GatewaySuccess GatewayStatus = "success"
	GatewayFailure GatewayStatus = "failure"
)

// GatewayResponse is the reply from a payment gateway charge attempt.
type GatewayResponse struct {
	Status        GatewayStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Message       string        `json:"message,omitempty"`
}
