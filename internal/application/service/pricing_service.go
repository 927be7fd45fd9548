package service

import (
	"math"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
)

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Settlement reconciles against this exact rounding, so every monetary value
// must pass through here before crossing a component boundary.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// TaxPolicy computes the tax owed on a cart. The POS currently ships with
// ZeroTaxPolicy; the seam exists so a real tax rule can be plugged in without
// touching the pricing or payload paths.
type TaxPolicy interface {
	Tax(items []entity.CartItem, subtotal float64) float64
}

// ZeroTaxPolicy charges no tax.
type ZeroTaxPolicy struct{}

func (ZeroTaxPolicy) Tax(items []entity.CartItem, subtotal float64) float64 {
	return 0
}

// PricingService derives monetary totals from a cart and an optional
// discount. It is a total function over its inputs: absent optional fields
// are valid, and it never returns an error.
type PricingService struct {
	taxPolicy TaxPolicy
}

// NewPricingService creates a new pricing service
func NewPricingService(taxPolicy TaxPolicy) *PricingService {
	if taxPolicy == nil {
		taxPolicy = ZeroTaxPolicy{}
	}
	return &PricingService{taxPolicy: taxPolicy}
}

// Price computes subtotal, tax, discount, total and item count for a cart.
// Each monetary value is rounded independently so a UI reading subtotal and
// total from the same pass cannot accumulate floating-point drift.
func (s *PricingService) Price(items []entity.CartItem, discount *entity.Discount) entity.CartTotals {
	var subtotal float64
	var itemCount int
	for _, item := range items {
		subtotal += item.LineTotal()
		itemCount += item.Quantity
	}

	tax := s.taxPolicy.Tax(items, subtotal)
	deduction := DiscountAmount(subtotal, discount)

	return entity.CartTotals{
		Subtotal:  Round2(subtotal),
		Tax:       Round2(tax),
		Discount:  Round2(deduction),
		Total:     Round2(subtotal + tax - deduction),
		ItemCount: itemCount,
	}
}

// DiscountAmount converts a discount descriptor into a currency amount.
// The result is deliberately not clamped to [0, subtotal]: a discount larger
// than the subtotal yields a negative total, and whether that is acceptable
// is a caller-level policy.
func DiscountAmount(subtotal float64, discount *entity.Discount) float64 {
	if discount == nil {
		return 0
	}
	if discount.Type == enum.DiscountTypePercentage {
		return subtotal * discount.Value / 100
	}
	if discount.Type.Absolute() {
		return discount.Value
	}
	return 0
}
