package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"food-ordering-system/internal/models"
)

// MockGateway is a deterministic stand-in for a live payment gateway.
// One configured sentinel card number always declines; every other
// charge succeeds with a synthetic transaction id.
type MockGateway struct {
	declineCard string
}

func NewMockGateway(declineCard string) *MockGateway {
	return &MockGateway{declineCard: declineCard}
}

func (g *MockGateway) Charge(_ context.Context, method string, details models.PaymentDetails, _ decimal.Decimal) models.GatewayResponse {
	if method == methodCreditCard && details.CardNumber == g.declineCard {
		return models.GatewayResponse{
			Status:  models.GatewayFailure,
			Message: "Card declined",
		}
	}
	return models.GatewayResponse{
		Status:        models.GatewaySuccess,
		TransactionID: uuid.NewString(),
	}
}
