package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"food-ordering-system/internal/config"
	"food-ordering-system/internal/faults"
	"food-ordering-system/internal/models"
)

// Cart is a mutable collection of line items owned by a single session.
// Items are kept in insertion order and are unique by name.
type Cart struct {
	items       []models.CartItem
	taxRate     decimal.Decimal
	deliveryFee decimal.Decimal
}

func New(cfg config.OrderConfig) *Cart {
	return &Cart{
		taxRate:     cfg.TaxRate,
		deliveryFee: cfg.DeliveryFee,
	}
}

// AddItem appends a new line item, or increments the quantity when an
// item with the same name is already present. Price and quantity are
// taken as given; validating them is the caller's responsibility.
func (c *Cart) AddItem(name string, price decimal.Decimal, quantity int) string {
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity += quantity
			return fmt.Sprintf("Updated %s quantity to %d", name, c.items[i].Quantity)
		}
	}
	c.items = append(c.items, models.CartItem{Name: name, UnitPrice: price, Quantity: quantity})
	return fmt.Sprintf("Added %s to cart", name)
}

// RemoveItem drops every entry matching name. Removing an absent item
// is a no-op but still reports removal.
func (c *Cart) RemoveItem(name string) string {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return fmt.Sprintf("Removed %s from cart", name)
}

// UpdateItemQuantity sets the quantity of an existing item. Zero and
// negative quantities are accepted as-is.
func (c *Cart) UpdateItemQuantity(name string, quantity int) (string, error) {
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity = quantity
			return fmt.Sprintf("Updated %s quantity to %d", name, quantity), nil
		}
	}
	return "", faults.NotFoundError{
		Resource: "cart",
		Message:  fmt.Sprintf("%s not found in cart", name),
	}
}

// CalculateTotal computes the cost breakdown: subtotal over all items,
// tax on the subtotal, the flat delivery fee, and their sum. Every
// figure is rounded half-up to two decimal places; tax and total are
// derived from the already-rounded subtotal.
func (c *Cart) CalculateTotal() models.Totals {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(c.taxRate).Round(2)
	fee := c.deliveryFee.Round(2)
	return models.Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee).Round(2),
	}
}

// ViewCart returns a snapshot of the cart in insertion order.
func (c *Cart) ViewCart() []models.CartLine {
	lines := make([]models.CartLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, models.CartLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return lines
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}
