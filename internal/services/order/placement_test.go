package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-system/internal/config"
	"food-ordering-system/internal/logger"
	"food-ordering-system/internal/services/cart"
)

type stubPayment struct {
	result  bool
	charged []decimal.Decimal
}

func (s *stubPayment) Charge(_ context.Context, amount decimal.Decimal) bool {
	s.charged = append(s.charged, amount)
	return s.result
}

func newTestPlacement() (*Placement, *cart.Cart) {
	cfg := config.Default()
	c := cart.New(cfg.Order)
	menu := NewRestaurantMenu([]string{"Burger", "Pizza", "Salad"})
	profile := UserProfile{DeliveryAddress: "123 Main St"}
	return NewPlacement(c, profile, menu, cfg.Order, logger.New("order-test")), c
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(c *cart.Cart)
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "empty cart",
			setup:       func(c *cart.Cart) {},
			wantSuccess: false,
			wantMessage: "Cart is empty",
		},
		{
			name: "item not on menu",
			setup: func(c *cart.Cart) {
				c.AddItem("Pasta", decimal.NewFromFloat(15.99), 1)
			},
			wantSuccess: false,
			wantMessage: "Pasta is not available",
		},
		{
			name: "all items available",
			setup: func(c *cart.Cart) {
				c.AddItem("Burger", decimal.NewFromFloat(8.99), 2)
			},
			wantSuccess: true,
			wantMessage: "Order is valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, c := newTestPlacement()
			tt.setup(c)
			result := p.ValidateOrder()
			if result.Success != tt.wantSuccess {
				t.Errorf("ValidateOrder() success = %v, want %v", result.Success, tt.wantSuccess)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("ValidateOrder() message = %q, want %q", result.Message, tt.wantMessage)
			}
		})
	}
}

func TestValidate_StatusTransition(t *testing.T) {
	p, c := newTestPlacement()
	assert.Equal(t, StatusDraft, p.Status())

	c.AddItem("Pizza", decimal.NewFromFloat(12.99), 1)
	require.NoError(t, p.Validate())
	assert.Equal(t, StatusValidated, p.Status())
}

func TestProceedToCheckout(t *testing.T) {
	p, c := newTestPlacement()
	c.AddItem("Burger", decimal.NewFromFloat(8.99), 2)

	summary := p.ProceedToCheckout()
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "123 Main St", summary.DeliveryAddress)
	assert.True(t, decimal.RequireFromString("24.78").Equal(summary.TotalInfo.Total))

	// Pure read: repeat calls agree and phase is untouched
	again := p.ProceedToCheckout()
	assert.Equal(t, summary, again)
	assert.Equal(t, StatusDraft, p.Status())
}

func TestConfirmOrder_Success(t *testing.T) {
	p, c := newTestPlacement()
	c.AddItem("Pizza", decimal.NewFromFloat(12.99), 1)
	pm := &stubPayment{result: true}

	result := p.ConfirmOrder(context.Background(), pm)
	require.True(t, result.Success)
	assert.Equal(t, "Order confirmed", result.Message)
	assert.NotEmpty(t, result.OrderID)
	assert.Equal(t, "45 minutes", result.EstimatedDelivery)
	assert.Equal(t, StatusConfirmed, p.Status())

	require.Len(t, pm.charged, 1)
	assert.True(t, decimal.RequireFromString("19.29").Equal(pm.charged[0]), "charged %s", pm.charged[0])
}

func TestConfirmOrder_UniqueOrderIDs(t *testing.T) {
	p, c := newTestPlacement()
	c.AddItem("Pizza", decimal.NewFromFloat(12.99), 1)
	pm := &stubPayment{result: true}

	first := p.ConfirmOrder(context.Background(), pm)
	second := p.ConfirmOrder(context.Background(), pm)
	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestConfirmOrder_PaymentFailed(t *testing.T) {
	p, c := newTestPlacement()
	c.AddItem("Pizza", decimal.NewFromFloat(12.99), 1)
	pm := &stubPayment{result: false}

	result := p.ConfirmOrder(context.Background(), pm)
	assert.False(t, result.Success)
	assert.Equal(t, "Payment failed", result.Message)
	assert.Empty(t, result.OrderID)
	assert.NotEqual(t, StatusConfirmed, p.Status())
}

func TestConfirmOrder_InvalidOrderNotCharged(t *testing.T) {
	p, _ := newTestPlacement()
	pm := &stubPayment{result: true}

	result := p.ConfirmOrder(context.Background(), pm)
	assert.False(t, result.Success)
	assert.Equal(t, "Order validation failed", result.Message)
	assert.Empty(t, pm.charged)
}

func TestRestaurantMenu(t *testing.T) {
	menu := NewRestaurantMenu([]string{"Burger", "Pizza"})
	assert.True(t, menu.IsItemAvailable("Burger"))
	assert.False(t, menu.IsItemAvailable("burger"))
	assert.False(t, menu.IsItemAvailable("Pasta"))
}
