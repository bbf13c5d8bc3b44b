package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"food-ordering-system/internal/config"
	"food-ordering-system/internal/faults"
	"food-ordering-system/internal/logger"
	"food-ordering-system/internal/models"
)

const methodCreditCard = "credit_card"

// Gateway is the external payment collaborator. Implementations charge
// the given amount and report a status plus a transaction id or message.
type Gateway interface {
	Charge(ctx context.Context, method string, details models.PaymentDetails, amount decimal.Decimal) models.GatewayResponse
}

// Processor validates payment methods against the configured set and
// runs charges through a gateway.
type Processor struct {
	methods map[string]bool
	gateway Gateway
	log     *logger.Logger
}

func NewProcessor(cfg config.PaymentConfig, gateway Gateway, log *logger.Logger) *Processor {
	methods := make(map[string]bool, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methods[m] = true
	}
	return &Processor{
		methods: methods,
		gateway: gateway,
		log:     log,
	}
}

// ValidatePaymentMethod checks that the method is supported and, for
// credit cards, that the details are structurally sound.
func (p *Processor) ValidatePaymentMethod(method string, details models.PaymentDetails) error {
	if !p.methods[method] {
		return faults.UnsupportedMethodError{
			Method:  method,
			Message: "Invalid payment method",
		}
	}
	if method == methodCreditCard && !p.ValidateCreditCard(details) {
		return faults.ValidationError{
			Field:   "payment_details",
			Message: "Invalid credit card details",
		}
	}
	return nil
}

// ValidateCreditCard checks card number and cvv lengths. No Luhn check
// and no expiry parsing; the mock gateway owns decline behavior.
func (p *Processor) ValidateCreditCard(details models.PaymentDetails) bool {
	return len(details.CardNumber) == 16 && len(details.CVV) == 3
}

// ProcessPayment validates the method and charges the order total.
// Failures never propagate as errors from here: this is the boundary
// where they become user-facing strings.
func (p *Processor) ProcessPayment(ctx context.Context, order models.CheckoutSummary, method string, details models.PaymentDetails) string {
	if err := p.ValidatePaymentMethod(method, details); err != nil {
		p.log.Error("payment_validation_failed", "Rejected payment method", err,
			slog.String("method", method))
		return fmt.Sprintf("Error: %s", faults.Message(err))
	}

	resp := p.gateway.Charge(ctx, method, details, order.TotalInfo.Total)
	if resp.Status == models.GatewaySuccess {
		p.log.Info("payment_processed", "Payment successful",
			slog.String("method", method),
			slog.String("transaction_id", resp.TransactionID),
			slog.String("amount", order.TotalInfo.Total.String()))
		return "Payment successful, Order confirmed"
	}

	p.log.Error("payment_declined", "Gateway declined the charge",
		faults.GatewayDeclinedError{Message: resp.Message},
		slog.String("method", method))
	return "Payment failed, please try again"
}
