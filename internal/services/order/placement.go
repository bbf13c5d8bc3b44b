package order

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"food-ordering-system/internal/config"
	"food-ordering-system/internal/faults"
	"food-ordering-system/internal/logger"
	"food-ordering-system/internal/models"
	"food-ordering-system/internal/services/cart"
)

// MenuProvider reports whether an item can currently be ordered.
type MenuProvider interface {
	IsItemAvailable(name string) bool
}

// PaymentMethod charges a total amount, reporting whether the charge went
// through.
type PaymentMethod interface {
	Charge(ctx context.Context, amount decimal.Decimal) bool
}

// UserProfile holds the delivery details for the ordering user.
type UserProfile struct {
	DeliveryAddress string `json:"delivery_address"`
}

// Status is the phase an order placement is in.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusValidated Status = "validated"
	StatusConfirmed Status = "confirmed"
)

var orderCounter int64

// Placement walks a cart through validation, checkout and confirmation.
type Placement struct {
	cart              *cart.Cart
	profile           UserProfile
	menu              MenuProvider
	status            Status
	estimatedDelivery string
	log               *logger.Logger
}

func NewPlacement(c *cart.Cart, profile UserProfile, menu MenuProvider, cfg config.OrderConfig, log *logger.Logger) *Placement {
	return &Placement{
		cart:              c,
		profile:           profile,
		menu:              menu,
		status:            StatusDraft,
		estimatedDelivery: cfg.EstimatedDelivery,
		log:               log,
	}
}

func (p *Placement) Status() Status {
	return p.status
}

// Validate checks that the cart is non-empty and every item is on the
// menu. The first failing item short-circuits the check. On success the
// placement moves to the validated phase.
func (p *Placement) Validate() error {
	items := p.cart.Items()
	if len(items) == 0 {
		return faults.ValidationError{Field: "cart", Message: "Cart is empty"}
	}
	for _, item := range items {
		if !p.menu.IsItemAvailable(item.Name) {
			return faults.NotFoundError{
				Resource: "menu",
				Message:  fmt.Sprintf("%s is not available", item.Name),
			}
		}
	}
	p.status = StatusValidated
	return nil
}

// ValidateOrder is the result-shaped form of Validate.
func (p *Placement) ValidateOrder() models.Result {
	if err := p.Validate(); err != nil {
		return models.Result{Success: false, Message: faults.Message(err)}
	}
	return models.Result{Success: true, Message: "Order is valid"}
}

// ProceedToCheckout recomputes totals and assembles the checkout view.
// It is a pure read: callable any number of times, never changes phase.
func (p *Placement) ProceedToCheckout() models.CheckoutSummary {
	return models.CheckoutSummary{
		Items:           p.cart.ViewCart(),
		TotalInfo:       p.cart.CalculateTotal(),
		DeliveryAddress: p.profile.DeliveryAddress,
	}
}

// ConfirmOrder re-validates the order and charges the total through the
// given payment method. Nothing is charged when validation fails.
func (p *Placement) ConfirmOrder(ctx context.Context, pm PaymentMethod) models.ConfirmationResult {
	if err := p.Validate(); err != nil {
		p.log.Error("order_validation_failed", "Order validation failed", err)
		return models.ConfirmationResult{Success: false, Message: "Order validation failed"}
	}

	total := p.cart.CalculateTotal().Total
	if !pm.Charge(ctx, total) {
		p.log.Info("payment_declined", "Payment failed",
			slog.String("total", total.String()))
		return models.ConfirmationResult{Success: false, Message: "Payment failed"}
	}

	p.status = StatusConfirmed
	orderID := generateOrderNumber()
	p.log.Info("order_confirmed", "Order confirmed",
		slog.String("order_id", orderID),
		slog.String("total", total.String()))

	return models.ConfirmationResult{
		Success:           true,
		Message:           "Order confirmed",
		OrderID:           orderID,
		EstimatedDelivery: p.estimatedDelivery,
	}
}

// generateOrderNumber produces an order number in format
// ORD_YYYYMMDD_NNN_xxxxxxxx. The counter keeps numbers ordered within a
// process; the random suffix keeps them unique across processes.
func generateOrderNumber() string {
	today := time.Now().UTC().Format("20060102")
	seq := atomic.AddInt64(&orderCounter, 1)
	return fmt.Sprintf("ORD_%s_%03d_%s", today, seq, uuid.NewString()[:8])
}
