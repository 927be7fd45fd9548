package entity

import "github.com/pospoint/terminal-api/internal/domain/enum"

// CartItem is a single line in a working cart. When Total is set it overrides
// Price*Quantity, which lets modifier-priced items carry their own total.
type CartItem struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Total     *float64 `json:"total,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// LineTotal returns the effective total for the line.
func (i CartItem) LineTotal() float64 {
	if i.Total != nil {
		return *i.Total
	}
	return i.Price * float64(i.Quantity)
}

// Discount describes a cart-level deduction. Percentage discounts apply to
// the subtotal; fixed/amount discounts are absolute currency values.
type Discount struct {
	Type   enum.DiscountType `json:"type"`
	Value  float64           `json:"value"`
	Reason string            `json:"reason,omitempty"`
}

// CartTotals holds the derived monetary summary of a cart. All monetary
// fields are rounded to 2 decimal places before they leave the pricing engine.
type CartTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}
