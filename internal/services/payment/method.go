package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"food-ordering-system/internal/models"
)

// GatewayMethod adapts a processor plus a chosen method and details to
// the simple charge contract order confirmation expects.
type GatewayMethod struct {
	processor *Processor
	method    string
	details   models.PaymentDetails
}

func NewGatewayMethod(p *Processor, method string, details models.PaymentDetails) *GatewayMethod {
	return &GatewayMethod{
		processor: p,
		method:    method,
		details:   details,
	}
}

// Charge validates the stored method and runs the charge. Any
// validation or gateway failure reads as a declined charge.
func (m *GatewayMethod) Charge(ctx context.Context, amount decimal.Decimal) bool {
	if err := m.processor.ValidatePaymentMethod(m.method, m.details); err != nil {
		return false
	}
	resp := m.processor.gateway.Charge(ctx, m.method, m.details, amount)
	return resp.Status == models.GatewaySuccess
}
